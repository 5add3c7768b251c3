package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadServerFromEnv_AllowedOrigins(t *testing.T) {
	t.Setenv("WS_ALLOWED_ORIGINS", " https://app.example.com, https://staging.example.com ,, ")

	cfg := LoadServerFromEnv()

	assert.Equal(t,
		[]string{"https://app.example.com", "https://staging.example.com"},
		cfg.AllowedOrigins)
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"single", "a", []string{"a"}},
		{"spaces and empties", " a , , b ", []string{"a", "b"}},
		{"only separators", " , ,", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitAndTrim(tt.in))
		})
	}
}
