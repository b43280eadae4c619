package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATA_DIR", "")
	t.Setenv("STATIC_DIR", "")
	t.Setenv("ADMIN_IDS", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "./data", cfg.DataDir)
	assert.Equal(t, "./web", cfg.StaticDir)
	assert.Equal(t, []int64{410375956}, cfg.AdminIDs)
}

func TestLoadConfigParsesAdminIDList(t *testing.T) {
	t.Setenv("ADMIN_IDS", "410375956, 111, 222,")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, []int64{410375956, 111, 222}, cfg.AdminIDs)
}

func TestLoadConfigRejectsInvalidAdminID(t *testing.T) {
	t.Setenv("ADMIN_IDS", "not-a-number")

	_, err := LoadConfig()
	assert.Error(t, err)
}
