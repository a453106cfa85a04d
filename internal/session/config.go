// Session config loading. The config file is JSON, named by convention
// <session>.session.json, discovered next to the test scenarios or one
// folder above them.
package session

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/dukaforge/snippets/pkg/types"
)

// loadConfig reads and validates a session config file with Viper.
func loadConfig(file string) (*types.SessionConfig, error) {
	v := viper.New()
	v.SetConfigFile(file)
	v.SetConfigType("json")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", types.ErrBadSessionConfig, file, err)
	}

	var config types.SessionConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", types.ErrBadSessionConfig, file, err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}
