package postgres

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rkreels/powerbi-sub001/internal/config"
)

func TestApplyPoolSettings(t *testing.T) {
	t.Parallel()

	poolCfg, err := pgxpool.ParseConfig("postgres://u:p@localhost:5432/bi")
	require.NoError(t, err)

	applyPoolSettings(poolCfg, config.DatabaseConfig{
		MaxConns:        4,
		MinConns:        10,
		MaxConnLifetime: time.Hour,
		MaxConnIdleTime: 5 * time.Minute,
	})

	assert.Equal(t, int32(4), poolCfg.MaxConns)
	assert.Equal(t, int32(4), poolCfg.MinConns, "min conns is capped at max conns")
	assert.Equal(t, time.Hour, poolCfg.MaxConnLifetime)
	assert.Equal(t, 5*time.Minute, poolCfg.MaxConnIdleTime)
	assert.Equal(t, applicationName, poolCfg.ConnConfig.RuntimeParams["application_name"])
}

func TestApplyPoolSettings_KeepsDSNApplicationName(t *testing.T) {
	t.Parallel()

	poolCfg, err := pgxpool.ParseConfig("postgres://u:p@localhost:5432/bi?application_name=reporting")
	require.NoError(t, err)
	defaultMax := poolCfg.MaxConns

	applyPoolSettings(poolCfg, config.DatabaseConfig{})

	assert.Equal(t, defaultMax, poolCfg.MaxConns, "zero keeps the pgx default")
	assert.Equal(t, "reporting", poolCfg.ConnConfig.RuntimeParams["application_name"])
}
