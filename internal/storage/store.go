// Package storage is the journal's persistence layer: a per-user key/value
// store of JSON documents. Keys combine a fixed prefix with an ISO calendar
// date (2006-01-02) or a singleton name, so every daily record is addressable
// and every derived record can be rebuilt from the raw daily logs.
package storage

import (
	"time"

	"github.com/google/uuid"
)

// Key prefixes. A full key looks like "karmaLog:2024-01-01".
const (
	PrefixDayLog     = "karmaLog:"
	PrefixReflection = "reflection:"
	PrefixWellness   = "wellness:"
)

// DateLayout is the calendar-day key format.
const DateLayout = "2006-01-02"

// Store is the key/value contract all journal components depend on.
// Implementations are last-write-wins; there is no merge or conflict
// detection between concurrent writers.
type Store interface {
	// Get returns the raw value for key, with ok=false when the key is unset.
	Get(userID uuid.UUID, key string) (value []byte, ok bool, err error)

	// Set writes value under key, replacing any previous value.
	Set(userID uuid.UUID, key string, value []byte) error

	// List returns all key/value pairs whose key starts with prefix.
	List(userID uuid.UUID, prefix string) (map[string][]byte, error)
}

// DayKey builds a date-keyed record key, e.g. DayKey(PrefixDayLog, d).
func DayKey(prefix string, day time.Time) string {
	return prefix + day.Format(DateLayout)
}
