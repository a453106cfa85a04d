package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionConfigValidate(t *testing.T) {
	valid := SessionConfig{
		NetworkProvider: NetworkProviderConfig{Type: ProviderProxy, URL: "http://localhost:7950"},
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*SessionConfig)
	}{
		{name: "missing url", mutate: func(c *SessionConfig) { c.NetworkProvider.URL = "" }},
		{name: "missing type", mutate: func(c *SessionConfig) { c.NetworkProvider.Type = "" }},
		{name: "unknown type", mutate: func(c *SessionConfig) { c.NetworkProvider.Type = "smoke-signals" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			config := valid
			tc.mutate(&config)
			assert.ErrorIs(t, config.Validate(), ErrBadSessionConfig)
		})
	}
}
