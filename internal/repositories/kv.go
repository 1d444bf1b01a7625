package repositories

import (
	"database/sql"
	"fmt"
	"time"
)

// Keys persisted by the session store. They deliberately match the browser
// client's localStorage keys so the on-disk contract stays recognizable.
const (
	KeyAuthToken      = "authToken"
	KeyUserInfo       = "userInfo"
	KeyRememberedUser = "rememberedUser"
)

// KVStore persists small string values under unique keys in the session table.
type KVStore struct {
	db *sql.DB
}

// NewKVStore creates a new [KVStore] with the given database connection
func NewKVStore(db *sql.DB) *KVStore {
	return &KVStore{db: db}
}

// Set inserts or replaces the value stored under key.
func (s *KVStore) Set(key, value string) error {
	query := `
		INSERT INTO session (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`

	if _, err := s.db.Exec(query, key, value, time.Now()); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

// Get retrieves the value stored under key. A missing key yields ("", nil):
// absence is an ordinary state for session keys, not a failure.
func (s *KVStore) Get(key string) (string, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM session WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get %s: %w", key, err)
	}
	return value, nil
}

// Delete removes the value stored under key. Deleting an absent key is a no-op.
func (s *KVStore) Delete(key string) error {
	if _, err := s.db.Exec("DELETE FROM session WHERE key = ?", key); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}
