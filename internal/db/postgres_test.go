package db

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/collegeerp/internal/config"
)

func TestPoolConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.Database.Host = "db.internal"
	cfg.Database.Port = "6432"
	cfg.Database.User = "erp"
	cfg.Database.Password = "secret"
	cfg.Database.DBName = "college_erp"
	cfg.Database.MaxOpenConns = 12
	cfg.Database.MaxIdleConns = 2
	cfg.Database.ConnMaxLifetime = "30m"

	poolConfig, err := PoolConfig(cfg)
	require.NoError(t, err)
	assert.EqualValues(t, 12, poolConfig.MaxConns)
	assert.EqualValues(t, 2, poolConfig.MinConns)
	assert.Equal(t, 30*time.Minute, poolConfig.MaxConnLifetime)
	assert.Equal(t, "db.internal", poolConfig.ConnConfig.Host)
	assert.EqualValues(t, 6432, poolConfig.ConnConfig.Port)
	assert.Equal(t, "college_erp", poolConfig.ConnConfig.Database)

	cfg.Database.ConnMaxLifetime = "forever"
	_, err = PoolConfig(cfg)
	assert.Error(t, err)
}
