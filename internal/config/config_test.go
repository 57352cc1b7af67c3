package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	dir := filepath.Join(home, ".slotguard")
	assert.Equal(t, dir, cfg.Dir)
	assert.Equal(t, filepath.Join(dir, "guis.toml"), cfg.CataloguePath)
	assert.Equal(t, filepath.Join(dir, "items.yaml"), cfg.ItemsPath)
	assert.Equal(t, filepath.Join(dir, "ledger.toml"), cfg.LedgerPath)
	assert.Equal(t, filepath.Join(dir, "pages"), cfg.PagesPath)
	assert.Equal(t, logrus.WarnLevel, cfg.LogLevel)
}

func TestLoadReadsConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".slotguard")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`
[catalogue]
path = "~/server/guis.toml"

[log]
level = "debug"
`), 0o600))

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "server", "guis.toml"), cfg.CataloguePath)
	assert.Equal(t, logrus.DebugLevel, cfg.LogLevel)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	ledgerPath := filepath.Join(t.TempDir(), "coins.toml")
	t.Setenv("SLOTGUARD_LEDGER_PATH", ledgerPath)
	t.Setenv("SLOTGUARD_LOG_LEVEL", "info")

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, ledgerPath, cfg.LedgerPath)
	assert.Equal(t, logrus.InfoLevel, cfg.LogLevel)
}

func TestLoadRejectsBadLogLevel(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SLOTGUARD_LOG_LEVEL", "chatty")

	_, err := Load(viper.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log.level")
}

func TestLoadRejectsMalformedConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".slotguard")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[log\n"), 0o600))

	_, err := Load(viper.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config file")
}

func TestLoggerHonorsLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := Config{LogLevel: logrus.InfoLevel}.Logger(&buf)

	logger.Debug("hidden")
	logger.WithField("gui", "forge").Info("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "gui=forge")
}
