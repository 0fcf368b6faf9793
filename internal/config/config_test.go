package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewDefault(t *testing.T) {
	cfg := NewDefault()

	assert.Equal(t, "0001", cfg.Defaults.Agency)
	assert.Equal(t, int64(50000), cfg.Defaults.WithdrawalCeiling)
	assert.Equal(t, 3, cfg.Defaults.MaxWithdrawals)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.True(t, cfg.Log.Pretty)
	assert.Equal(t, "https://viacep.com.br", cfg.Viacep.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Viacep.Timeout)
}
