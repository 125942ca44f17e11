package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "all flags", args: []string{"-a", "http://api:8080", "-i", "3", "-token", "/tmp/tok"},
			expected: &Config{ServerURL: "http://api:8080", RequestTimeout: 3 * time.Second, TokenFile: "/tmp/tok"}},
		{name: "foreign flags ignored", args: []string{"-c", "cfg.json", "-x", "1", "-a", "http://api"},
			expected: &Config{ServerURL: "http://api", RequestTimeout: 10 * time.Second, TokenFile: ".wtwr_token"}},
		{name: "incorrect timeout", args: []string{"-i", "abc"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := &Config{}
			config.LoadDefaults()

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(config, tt.args) })
				return
			}
			require.NotPanics(t, func() { parseFlags(config, tt.args) })
			assert.Empty(t, cmp.Diff(tt.expected, config))
		})
	}
}
