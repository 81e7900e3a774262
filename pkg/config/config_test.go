package config_test

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/leave-tracker/pkg/config"
)

func TestFromViper_Defaults(t *testing.T) {
	v := viper.New()
	v.Set("JWT_SECRET", "x")

	cfg, err := config.FromViper(v)
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "memory", cfg.Session.Store)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, 60, cfg.JWT.Expiration)
	assert.Equal(t, "postgres://postgres:@localhost:5432/leave_tracker?sslmode=disable", cfg.DB.ConnectionString())
	assert.Equal(t, 10, cfg.DB.MaxConns)
	assert.Equal(t, 1, cfg.DB.MinConns)
}

func TestFromViper_SinSecretoFalla(t *testing.T) {
	_, err := config.FromViper(viper.New())
	assert.Error(t, err)
}

func TestFromViper_RedisRequiereURL(t *testing.T) {
	v := viper.New()
	v.Set("JWT_SECRET", "x")
	v.Set("SESSION_STORE", "redis")
	_, err := config.FromViper(v)
	assert.Error(t, err)

	v.Set("REDIS_URL", "redis://localhost:6379/0")
	cfg, err := config.FromViper(v)
	require.NoError(t, err)
	assert.Equal(t, "redis", cfg.Session.Store)
}

func TestFromViper_EnteroComoTexto(t *testing.T) {
	v := viper.New()
	v.Set("JWT_SECRET", "x")
	v.Set("HTTP_PORT", "9090")
	v.Set("SESSION_COOKIE_SECURE", "true")
	cfg, err := config.FromViper(v)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.True(t, cfg.Session.CookieSecure)
}
