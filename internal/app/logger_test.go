//go:build !integration

package app

import (
	"testing"

	"github.com/guttosm/cardapio-service/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestInitializeLogger(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.LogConfig
		want zerolog.Level
	}{
		{name: "empty level defaults to info", cfg: config.LogConfig{}, want: zerolog.InfoLevel},
		{name: "debug level", cfg: config.LogConfig{Level: "debug"}, want: zerolog.DebugLevel},
		{name: "pretty output", cfg: config.LogConfig{Level: "warn", Pretty: true}, want: zerolog.WarnLevel},
		{name: "error level", cfg: config.LogConfig{Level: "error"}, want: zerolog.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			InitializeLogger(tt.cfg)
			assert.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}
	InitializeLogger(config.LogConfig{Level: "info"})
}
