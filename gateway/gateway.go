package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/vojniknikola-ui/strojopromet-api/models"
)

// BlobTier is the preferred key-blob store.
type BlobTier interface {
	Exists(ctx context.Context, name string) (bool, error)
	Fetch(ctx context.Context, name string) ([]byte, error)
	Put(ctx context.Context, name string, data []byte) error
	Delete(ctx context.Context, name string) error
}

// RelationalTier is the fallback row store.
type RelationalTier interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Upsert(ctx context.Context, key string, payload []byte) error
	Delete(ctx context.Context, key string) error
}

// Gateway persists carts through two ordered tiers: blob first, relational as
// a hedge. Tier failures are logged and swallowed; from the caller's point of
// view read/write/delete effectively always succeed, and the worst outcome is
// a cart that only lives in the client's local tier until the backends
// recover.
type Gateway struct {
	blob  BlobTier
	table RelationalTier
}

// NewGateway builds a gateway over the two tiers. Either tier may be nil
// (e.g. the blob store failed to connect at startup); a nil tier behaves as a
// permanently failing one.
func NewGateway(blob BlobTier, table RelationalTier) *Gateway {
	return &Gateway{blob: blob, table: table}
}

// CartKey derives the storage key for a cart identifier.
func CartKey(cartID string) string {
	return "cart-" + cartID + ".json"
}

// NewCartID mints an opaque per-browser cart identifier.
func NewCartID() string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}

// Read loads the cart for an identifier, falling through blob → relational →
// empty. It never fails: a cart that cannot be found in any tier is an empty
// cart.
func (g *Gateway) Read(ctx context.Context, cartID string) []models.CartLine {
	key := CartKey(cartID)

	if g.blob != nil {
		if ok, err := g.blob.Exists(ctx, key); err != nil {
			log.Printf("⚠️ Cart gateway: blob head failed for %s: %v", key, err)
		} else if ok {
			data, err := g.blob.Fetch(ctx, key)
			if err != nil {
				log.Printf("⚠️ Cart gateway: blob fetch failed for %s: %v", key, err)
			} else if lines, err := decodeLines(data); err != nil {
				log.Printf("⚠️ Cart gateway: blob payload for %s unreadable: %v", key, err)
			} else {
				return lines
			}
		}
	}

	if g.table != nil {
		if data, err := g.table.Load(ctx, key); err == nil {
			lines, err := decodeLines(data)
			if err == nil {
				return lines
			}
			log.Printf("⚠️ Cart gateway: relational payload for %s unreadable: %v", key, err)
		}
	}

	return []models.CartLine{}
}

// Write persists the cart through the first tier that accepts it. When both
// tiers fail the failure is logged and swallowed: the cart must never block
// the user, who still has the client-local copy.
func (g *Gateway) Write(ctx context.Context, cartID string, lines []models.CartLine) {
	key := CartKey(cartID)
	payload, err := encodeLines(lines)
	if err != nil {
		log.Printf("⚠️ Cart gateway: serialize failed for %s: %v", key, err)
		return
	}

	if g.blob != nil {
		err := g.blob.Put(ctx, key, payload)
		if err == nil {
			return
		}
		log.Printf("⚠️ Cart gateway: blob put failed for %s, trying relational tier: %v", key, err)
	}

	if g.table != nil {
		err := g.table.Upsert(ctx, key, payload)
		if err == nil {
			return
		}
		log.Printf("⚠️ Cart gateway: relational upsert failed for %s: %v", key, err)
	}

	log.Printf("⚠️ Cart gateway: all tiers failed for %s, cart is client-local only", key)
}

// Delete removes the persisted cart from both tiers, best effort.
func (g *Gateway) Delete(ctx context.Context, cartID string) {
	key := CartKey(cartID)

	if g.blob != nil {
		if err := g.blob.Delete(ctx, key); err != nil {
			log.Printf("⚠️ Cart gateway: blob delete failed for %s: %v", key, err)
		}
	}
	if g.table != nil {
		if err := g.table.Delete(ctx, key); err != nil {
			log.Printf("⚠️ Cart gateway: relational delete failed for %s: %v", key, err)
		}
	}
}

func encodeLines(lines []models.CartLine) ([]byte, error) {
	if lines == nil {
		lines = []models.CartLine{}
	}
	return json.Marshal(lines)
}

func decodeLines(data []byte) ([]models.CartLine, error) {
	lines := []models.CartLine{}
	if err := json.Unmarshal(data, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}
