package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		allowed  []string
		expected []string
	}{
		{
			name:     "flag with separate value",
			args:     []string{"-a", ":9090", "-d", "dsn"},
			allowed:  []string{"-a"},
			expected: []string{"-a", ":9090"},
		},
		{
			name:     "flag with equals value",
			args:     []string{"--config=conf.json", "-x", "1"},
			allowed:  []string{"--config"},
			expected: []string{"--config=conf.json"},
		},
		{
			name:     "boolean-style flag followed by another flag",
			args:     []string{"-v", "-a", ":9090"},
			allowed:  []string{"-v"},
			expected: []string{"-v"},
		},
		{
			name:     "nothing allowed",
			args:     []string{"-a", ":9090"},
			allowed:  []string{},
			expected: []string{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, FilterArgs(tc.args, tc.allowed))
		})
	}
}
