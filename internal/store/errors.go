package store

import "fmt"

// ErrStaleWrite indicates a conditional write lost a race: the stored
// version no longer matches the version the caller read.
type ErrStaleWrite struct {
	Key      string
	Expected int64 // version the caller required (0 = absent)
	Actual   int64 // version found (0 = absent)
}

func (e *ErrStaleWrite) Error() string {
	return fmt.Sprintf("stale write to %q: expected version %d, found %d", e.Key, e.Expected, e.Actual)
}

// ErrPersistenceUnavailable indicates the storage medium could not be read
// or written.
type ErrPersistenceUnavailable struct {
	Op  string
	Err error
}

func (e *ErrPersistenceUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("persistence unavailable (%s): %v", e.Op, e.Err)
	}
	return fmt.Sprintf("persistence unavailable (%s)", e.Op)
}

func (e *ErrPersistenceUnavailable) Unwrap() error { return e.Err }

func unavailable(op string, err error) error {
	return &ErrPersistenceUnavailable{Op: op, Err: err}
}
