package gateway

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// blobTTL keeps abandoned carts from accumulating forever; it matches the
// 30-day cart cookie.
const blobTTL = 30 * 24 * time.Hour

// BlobStore is the preferred persistence tier: a key-value blob store holding
// one JSON blob per cart key.
type BlobStore struct {
	client *redis.Client
	prefix string
}

// NewBlobStore connects to the blob store and verifies the connection.
func NewBlobStore(addr, password, prefix string) (*BlobStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to blob store: %w", err)
	}
	log.Println("✅ Connected to blob store")

	return &BlobStore{client: client, prefix: prefix}, nil
}

func (b *BlobStore) key(name string) string {
	return b.prefix + ":" + name
}

func (b *BlobStore) Exists(ctx context.Context, name string) (bool, error) {
	n, err := b.client.Exists(ctx, b.key(name)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (b *BlobStore) Fetch(ctx context.Context, name string) ([]byte, error) {
	data, err := b.client.Get(ctx, b.key(name)).Bytes()
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (b *BlobStore) Put(ctx context.Context, name string, data []byte) error {
	return b.client.Set(ctx, b.key(name), data, blobTTL).Err()
}

func (b *BlobStore) Delete(ctx context.Context, name string) error {
	return b.client.Del(ctx, b.key(name)).Err()
}

func (b *BlobStore) Close() error {
	return b.client.Close()
}
