package store

import (
	"github.com/nimburion/mongokit/pkg/config"
	"github.com/nimburion/mongokit/pkg/observability/logger"
	"github.com/nimburion/mongokit/pkg/store/mongodb"
)

// Open connects a MongoDB adapter from loaded configuration.
func Open(cfg config.DatabaseConfig, log logger.Logger) (*mongodb.Adapter, error) {
	return mongodb.NewAdapter(mongodb.Config{
		URL:              cfg.URL,
		Database:         cfg.Database,
		ConnectTimeout:   cfg.ConnectTimeout,
		OperationTimeout: cfg.OperationTimeout,
	}, log)
}
