package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()

	assert.Equal(t, "::", c.Server.Host)
	assert.Equal(t, "6667", c.Server.Port)
	assert.Empty(t, c.Server.Name)
	assert.Empty(t, c.Server.WebsocketAddr)
	assert.False(t, c.Server.Debug)
}

func TestApplyArgs(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantHost string
		wantPort string
	}{
		{
			name:     "no args keeps defaults",
			args:     nil,
			wantHost: "::",
			wantPort: "6667",
		},
		{
			name:     "single arg without colon is a port",
			args:     []string{"6668"},
			wantHost: "::",
			wantPort: "6668",
		},
		{
			name:     "single arg with colon is a host",
			args:     []string{"::1"},
			wantHost: "::1",
			wantPort: "6667",
		},
		{
			name:     "host and port",
			args:     []string{"127.0.0.1", "7000"},
			wantHost: "127.0.0.1",
			wantPort: "7000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			require.NoError(t, c.ApplyArgs(tt.args))
			assert.Equal(t, tt.wantHost, c.Server.Host)
			assert.Equal(t, tt.wantPort, c.Server.Port)
		})
	}
}

func TestApplyArgsTooMany(t *testing.T) {
	c := Default()
	assert.Error(t, c.ApplyArgs([]string{"a", "b", "c"}))
}
