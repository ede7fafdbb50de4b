package storage

import (
	"context"
	"time"
)

//go:generate moq -out metadata_mock.go . MetadataStorage

// SyncKind identifies a sync direction whose last run is recorded
type SyncKind string

const (
	SyncKindPush SyncKind = "push"
	SyncKindPull SyncKind = "pull"
)

// MetadataStorage defines interface for storing client metadata
type MetadataStorage interface {
	// SaveLastSyncTime saves the time of the last finished sync of the given kind
	SaveLastSyncTime(ctx context.Context, kind SyncKind, at time.Time) error

	// GetLastSyncTime retrieves the time of the last finished sync of the given kind
	// Returns zero time if no sync has been performed yet
	GetLastSyncTime(ctx context.Context, kind SyncKind) (time.Time, error)
}
