package kvstore

import (
	"context"
	"fmt"
	"log"

	"joinerypro/internal/config"
	"joinerypro/internal/infrastructure/database"
	"joinerypro/internal/usecase/interfaces"
)

// Open builds the key-value gateway selected by cfg.StorageDriver.
func Open(ctx context.Context, cfg config.Config) (interfaces.IKeyValueStore, error) {
	log.Printf("[storage] opening driver=%s", cfg.StorageDriver)
	switch cfg.StorageDriver {
	case config.DriverMemory:
		return NewMemoryStore(), nil
	case config.DriverFile:
		return NewFileStore(cfg.StorageDir)
	case config.DriverDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, database.DynamoDBOptions{
			Region:          cfg.AWSRegion,
			Endpoint:        cfg.DynamoDBEndpoint,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretAccessKey,
		})
		if err != nil {
			return nil, err
		}
		return NewDynamoStore(ddb, cfg.KVTable), nil
	case config.DriverSQLite, config.DriverPostgres:
		db, err := database.OpenGorm(cfg.StorageDriver, cfg.DatabaseDSN, cfg.StorageDir, cfg.DBDebug)
		if err != nil {
			return nil, err
		}
		return NewGormStore(db)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
