package infra

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/umalmyha/customer-accounts/internal/config"
)

// ConfigureLogger sets up global logrus logger
func ConfigureLogger(cfg config.LogCfg) error {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return fmt.Errorf("failed to parse log level - %w", err)
	}
	logrus.SetLevel(level)

	switch cfg.Format {
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	case "text":
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return fmt.Errorf("unsupported log format %q", cfg.Format)
	}
	return nil
}
