package config

import "testing"

func TestFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, k := range []string{"PORT", "STORAGE_DRIVER", "STORAGE_DIR", "DB_DEBUG", "KV_TABLE", "DYNAMODB_ENDPOINT", "AWS_REGION"} {
			t.Setenv(k, "")
		}
		cfg := FromEnv()
		if cfg.Port != "8080" || cfg.StorageDriver != DriverFile || cfg.StorageDir != "./data" {
			t.Fatalf("unexpected defaults: %+v", cfg)
		}
		if cfg.DBDebug || cfg.KVTable != "joinerypro_kv" || cfg.DynamoDBEndpoint != "" || cfg.AWSRegion != "us-east-1" {
			t.Fatalf("unexpected storage defaults: %+v", cfg)
		}
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", " DynamoDB ")
		t.Setenv("STORAGE_DIR", "/var/lib/atelier")
		t.Setenv("DB_DEBUG", "1")
		t.Setenv("KV_TABLE", "atelier_kv")
		t.Setenv("DYNAMODB_ENDPOINT", "http://dynamodb:8000")
		t.Setenv("AWS_REGION", "eu-west-3")

		cfg := FromEnv()
		if cfg.StorageDriver != DriverDynamoDB || cfg.StorageDir != "/var/lib/atelier" || !cfg.DBDebug {
			t.Fatalf("unexpected config: %+v", cfg)
		}
		if cfg.KVTable != "atelier_kv" || cfg.DynamoDBEndpoint != "http://dynamodb:8000" || cfg.AWSRegion != "eu-west-3" {
			t.Fatalf("unexpected dynamodb config: %+v", cfg)
		}
	})
}
