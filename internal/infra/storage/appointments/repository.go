// Package appointments owns the persisted appointment collection.
// Every other component reaches the collection only through this
// repository: one storage key holding a plain JSON array, read and
// replaced wholesale.
package appointments

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/huellas-vet/booking-service/internal/domain"
)

// Repository reads and writes the appointment collection.
type Repository struct {
	kv     KV
	key    string
	logger Logger
}

// NewRepository creates a repository persisting under the given
// storage key.
func NewRepository(kv KV, key string, logger Logger) *Repository {
	return &Repository{kv: kv, key: key, logger: logger}
}

// ReadAll returns the stored collection in insertion order. An absent
// key reads as an empty collection. A storage failure or a blob that
// does not parse as the expected array is logged and also reads as
// empty: corruption never propagates to callers, and the next
// successful write overwrites it.
func (r *Repository) ReadAll(ctx context.Context) []*domain.Appointment {
	raw, ok, err := r.kv.Get(r.key)
	if err != nil {
		r.logger.Error("ReadAll: storage read failed for key=%s: %v", r.key, err)
		return []*domain.Appointment{}
	}
	if !ok {
		return []*domain.Appointment{}
	}

	var list []*domain.Appointment
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		r.logger.Warn("ReadAll: corrupt collection under key=%s, treating as empty: %v", r.key, err)
		return []*domain.Appointment{}
	}
	if list == nil {
		return []*domain.Appointment{}
	}
	return list
}

// WriteAll serializes and persists the full collection, replacing any
// prior contents. There is no append primitive: every write replaces
// the whole blob.
func (r *Repository) WriteAll(ctx context.Context, list []*domain.Appointment) error {
	if list == nil {
		list = []*domain.Appointment{}
	}

	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}

	if err := r.kv.Set(r.key, string(data)); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}
