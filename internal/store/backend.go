package store

import (
	"context"
	"time"
)

// Well-known keys.
const (
	RootKey  = "neurotrack_data"    // UserData root
	DraftKey = "current_assessment" // in-progress answers
)

// AnyVersion makes Write unconditional.
const AnyVersion int64 = -1

// Entry is a stored value with its version stamp. Versions start at 1 and
// increase by one on every write.
type Entry struct {
	Value     []byte
	Version   int64
	UpdatedAt time.Time
}

// Backend is a small versioned key-value store.
type Backend interface {
	// Read returns the entry for key, or nil when the key is absent.
	Read(ctx context.Context, key string) (*Entry, error)

	// Write stores value under key and returns the new version.
	// ifVersion is AnyVersion (unconditional), 0 (key must be absent) or
	// the version the key must currently have. A mismatch returns
	// *ErrStaleWrite and leaves the stored value untouched.
	Write(ctx context.Context, key string, value []byte, ifVersion int64) (int64, error)

	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}

// checkVersion validates ifVersion against the current version (0 = absent).
func checkVersion(key string, ifVersion, current int64) error {
	if ifVersion == AnyVersion || ifVersion == current {
		return nil
	}
	return &ErrStaleWrite{Key: key, Expected: ifVersion, Actual: current}
}
