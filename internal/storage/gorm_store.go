package storage

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Record is one persisted key/value entry.
type Record struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_kv_user_key" json:"user_id"`
	Key       string         `gorm:"size:120;not null;uniqueIndex:idx_kv_user_key" json:"key"`
	Value     datatypes.JSON `json:"value"`
	UpdatedAt time.Time      `json:"updated_at"`
	CreatedAt time.Time      `json:"created_at"`
}

func (Record) TableName() string { return "kv_records" }

// GormStore persists records through GORM. Writes upsert on (user_id, key),
// so the newest save always wins.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Get(userID uuid.UUID, key string) ([]byte, bool, error) {
	var rec Record
	err := s.db.Where("user_id = ? AND key = ?", userID, key).First(&rec).Error
	if err == gorm.ErrRecordNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get %q: %w", key, err)
	}
	return []byte(rec.Value), true, nil
}

func (s *GormStore) Set(userID uuid.UUID, key string, value []byte) error {
	rec := Record{
		ID:     uuid.New(),
		UserID: userID,
		Key:    key,
		Value:  datatypes.JSON(value),
	}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

func (s *GormStore) List(userID uuid.UUID, prefix string) (map[string][]byte, error) {
	var recs []Record
	pattern := strings.ReplaceAll(prefix, "_", `\_`) + "%"
	err := s.db.Where(`user_id = ? AND key LIKE ? ESCAPE '\'`, userID, pattern).Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("list %q: %w", prefix, err)
	}
	out := make(map[string][]byte, len(recs))
	for _, r := range recs {
		out[r.Key] = []byte(r.Value)
	}
	return out, nil
}
