package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".slotguard"
	envPrefix  = "SLOTGUARD"

	CataloguePathKey = "catalogue.path"
	ItemsPathKey     = "items.path"
	LedgerPathKey    = "ledger.path"
	PagesPathKey     = "pages.path"
	LogLevelKey      = "log.level"
)

type Config struct {
	Dir           string
	CataloguePath string
	ItemsPath     string
	LedgerPath    string
	PagesPath     string
	LogLevel      logrus.Level
}

// Load reads ~/.slotguard/config.toml when present. SLOTGUARD_* environment variables override
// file values, e.g. SLOTGUARD_LEDGER_PATH.
func Load(cfg *viper.Viper) (Config, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}
	dir := filepath.Join(homeDir, configDir)

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(dir)
	cfg.SetDefault(CataloguePathKey, filepath.Join(dir, "guis.toml"))
	cfg.SetDefault(ItemsPathKey, filepath.Join(dir, "items.yaml"))
	cfg.SetDefault(LedgerPathKey, filepath.Join(dir, "ledger.toml"))
	cfg.SetDefault(PagesPathKey, filepath.Join(dir, "pages"))
	cfg.SetDefault(LogLevelKey, logrus.WarnLevel.String())

	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	err = cfg.ReadInConfig()
	if err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	out := Config{Dir: dir}
	for key, target := range map[string]*string{
		CataloguePathKey: &out.CataloguePath,
		ItemsPathKey:     &out.ItemsPath,
		LedgerPathKey:    &out.LedgerPath,
		PagesPathKey:     &out.PagesPath,
	} {
		*target, err = normalizePath(cfg.GetString(key), homeDir)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", key, err)
		}
	}

	out.LogLevel, err = logrus.ParseLevel(cfg.GetString(LogLevelKey))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", LogLevelKey, err)
	}

	return out, nil
}

// Logger builds the process logger. It writes text lines to w at the configured level.
func (c Config) Logger(w io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(c.LogLevel)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return logger
}

func normalizePath(path, homeDir string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", errors.New("path is empty")
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		path = filepath.Join(homeDir, strings.TrimPrefix(path, "~"))
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve path: %w", err)
	}
	return filepath.Clean(absPath), nil
}
