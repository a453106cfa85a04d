package types

import "fmt"

// Recognized network provider kinds.
const (
	ProviderProxy = "proxy"
	ProviderAPI   = "api"
)

// knownProviders lists the provider kinds that Validate accepts.
var knownProviders = map[string]bool{
	ProviderProxy: true,
	ProviderAPI:   true,
}

// NetworkProviderConfig declares how the session reaches the network.
type NetworkProviderConfig struct {
	Type    string `json:"type" mapstructure:"type"`
	URL     string `json:"url" mapstructure:"url"`
	Timeout int    `json:"timeout" mapstructure:"timeout"` // Seconds; 0 means the provider default.
}

// UserConfig declares one test user known to the session.
type UserConfig struct {
	Name    string `json:"name" mapstructure:"name"`
	Address string `json:"address" mapstructure:"address"`
}

// ReportingConfig declares where generated reports are written.
type ReportingConfig struct {
	OutFolder string `json:"outFolder" mapstructure:"outFolder"`
}

// SessionConfig is the parsed content of a <session>.session.json file.
type SessionConfig struct {
	NetworkProvider NetworkProviderConfig `json:"networkProvider" mapstructure:"networkProvider"`
	Users           []UserConfig          `json:"users" mapstructure:"users"`
	Reporting       ReportingConfig       `json:"reporting" mapstructure:"reporting"`
}

// Validate checks that the config declares a complete, recognized network
// provider. All failures wrap ErrBadSessionConfig.
func (c SessionConfig) Validate() error {
	if c.NetworkProvider.URL == "" {
		return fmt.Errorf("%w: missing networkProvider.url", ErrBadSessionConfig)
	}
	if c.NetworkProvider.Type == "" {
		return fmt.Errorf("%w: missing networkProvider.type", ErrBadSessionConfig)
	}
	if !knownProviders[c.NetworkProvider.Type] {
		return fmt.Errorf("%w: unrecognized networkProvider.type %q", ErrBadSessionConfig, c.NetworkProvider.Type)
	}
	return nil
}
