package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	applog "designflow/internal/log"
)

// Watch reloads the configuration whenever the file named by
// DESIGNFLOW_CONFIG is written and passes the result to onChange. It reports
// false when no file is configured. Reloads that fail are logged and skipped.
func Watch(onChange func(Config)) (bool, error) {
	path := strings.TrimSpace(os.Getenv(FileEnv))
	if path == "" {
		return false, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return false, fmt.Errorf("read config file %s: %w", path, err)
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		applog.Debug(context.Background(), "config file changed", "op", e.Op.String(), "file", e.Name)
		cfg, err := Load()
		if err != nil {
			applog.Warn(context.Background(), "failed to reload config", "file", e.Name, "error", err)
			return
		}
		onChange(cfg)
	})
	v.WatchConfig()
	return true, nil
}
