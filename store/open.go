package store

import (
	"context"
	"fmt"
	"log/slog"

	"skillswap_server/config"
)

// Open connects the backend selected by cfg.Driver.
func Open(ctx context.Context, cfg config.StoreConfig, logger *slog.Logger) (Store, error) {
	switch cfg.Driver {
	case "dynamodb":
		logger.Info("initializing DynamoDB client", "region", cfg.Region, "endpoint", cfg.Endpoint)
		client, err := InitializeDynamoDBClient(ctx, cfg.Region, cfg.Endpoint)
		if err != nil {
			return nil, err
		}
		return NewDynamoStore(client, cfg.Tables, logger), nil
	case "mongodb":
		logger.Info("connecting to mongodb", "database", cfg.Database)
		return OpenMongo(ctx, cfg.MongoURL, cfg.Database, cfg.Tables, logger)
	case "memory":
		logger.Warn("using in-memory store; data is lost on restart")
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}
