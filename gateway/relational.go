package gateway

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vojniknikola-ui/strojopromet-api/models"
)

// CartTable is the fallback persistence tier: one relational row per cart
// key, used when the blob store is unavailable.
type CartTable struct {
	db *gorm.DB
}

func NewCartTable(db *gorm.DB) *CartTable {
	return &CartTable{db: db}
}

func (t *CartTable) Load(ctx context.Context, key string) ([]byte, error) {
	var record models.CartRecord
	if err := t.db.WithContext(ctx).First(&record, "key = ?", key).Error; err != nil {
		return nil, err
	}
	return []byte(record.Payload), nil
}

func (t *CartTable) Upsert(ctx context.Context, key string, payload []byte) error {
	record := models.CartRecord{Key: key, Payload: string(payload)}
	return t.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&record).Error
}

func (t *CartTable) Delete(ctx context.Context, key string) error {
	return t.db.WithContext(ctx).Delete(&models.CartRecord{}, "key = ?", key).Error
}
