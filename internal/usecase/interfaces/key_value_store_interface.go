package interfaces

//go:generate mockgen -source=key_value_store_interface.go -destination=mocks/mock_key_value_store_interface.go -package=mocks

import "context"

// IKeyValueStore is the persistence gateway: whole values stored under a key.
//
// Load returns nil and no error when the key has never been saved.
// Save replaces the value; there are no partial updates.
type IKeyValueStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
}
