package boltdb

import (
	"context"
	"encoding/binary"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/cardconnect/internal/client/storage"
)

func lastSyncKey(kind storage.SyncKind) []byte {
	return []byte("last_" + string(kind) + "_at")
}

// SaveLastSyncTime saves the time of the last finished sync of the given kind
func (s *Storage) SaveLastSyncTime(ctx context.Context, kind storage.SyncKind, at time.Time) error {
	// Время хранится как UnixNano в big endian
	value := make([]byte, 8)
	binary.BigEndian.PutUint64(value, uint64(at.UnixNano()))

	return s.update(func(tx *bbolt.Tx) error {
		b, err := bucket(tx, bucketMetadata)
		if err != nil {
			return err
		}

		if err := b.Put(lastSyncKey(kind), value); err != nil {
			return fmt.Errorf("failed to save last %s time: %w", kind, err)
		}
		return nil
	})
}

// GetLastSyncTime retrieves the time of the last finished sync of the given kind
// Returns zero time if no sync has been performed yet
func (s *Storage) GetLastSyncTime(ctx context.Context, kind storage.SyncKind) (time.Time, error) {
	var at time.Time

	err := s.view(func(tx *bbolt.Tx) error {
		b, err := bucket(tx, bucketMetadata)
		if err != nil {
			return err
		}

		value := b.Get(lastSyncKey(kind))
		if value == nil {
			return nil
		}
		if len(value) != 8 {
			return fmt.Errorf("corrupted last %s time", kind)
		}

		at = time.Unix(0, int64(binary.BigEndian.Uint64(value)))
		return nil
	})
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get last %s time: %w", kind, err)
	}

	return at, nil
}
