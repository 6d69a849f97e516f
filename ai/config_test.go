package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "http://localhost:11434/v1", cfg.Host)
	assert.Equal(t, "all-minilm", cfg.Model)
}

func TestNewConfig(t *testing.T) {
	t.Run("no options uses defaults", func(t *testing.T) {
		cfg := NewConfig()
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("with host", func(t *testing.T) {
		cfg := NewConfig(WithHost("http://embed.internal:9100/v1"))
		assert.Equal(t, "http://embed.internal:9100/v1", cfg.Host)
		assert.Equal(t, "all-minilm", cfg.Model)
	})

	t.Run("with model", func(t *testing.T) {
		cfg := NewConfig(WithModel("text-embedding-3-small"))
		assert.Equal(t, "text-embedding-3-small", cfg.Model)
	})
}

func TestConfig_Normalize(t *testing.T) {
	tests := []struct {
		name string
		host string
		want string
	}{
		{
			name: "already has v1 suffix",
			host: "http://localhost:11434/v1",
			want: "http://localhost:11434/v1",
		},
		{
			name: "missing v1 suffix",
			host: "http://localhost:11434",
			want: "http://localhost:11434/v1",
		},
		{
			name: "trailing slash",
			host: "http://localhost:11434/",
			want: "http://localhost:11434/v1",
		},
		{
			name: "empty host left alone",
			host: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Host: tt.host, Model: "m"}
			cfg.Normalize()
			assert.Equal(t, tt.want, cfg.Host)
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cfg := NewConfig()
		require.NoError(t, cfg.Validate())
	})

	t.Run("missing host", func(t *testing.T) {
		cfg := &Config{Model: "all-minilm"}
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing model", func(t *testing.T) {
		cfg := &Config{Host: "http://localhost:11434/v1"}
		assert.Error(t, cfg.Validate())
	})

	t.Run("validate normalizes host", func(t *testing.T) {
		cfg := &Config{Host: "http://localhost:11434", Model: "all-minilm"}
		require.NoError(t, cfg.Validate())
		assert.Equal(t, "http://localhost:11434/v1", cfg.Host)
	})
}
