// Package draft persists the in-progress registration wizard. The whole
// field record is written through on every change and restored on the next
// start; it is cleared only on successful submission or when the user
// abandons the wizard from its first step.
package draft

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/bemgestar/bemgestar/internal/client/models"
	"github.com/bemgestar/bemgestar/internal/client/repositories/metadata"
	"github.com/bemgestar/bemgestar/internal/cryptox"
	"github.com/bemgestar/bemgestar/internal/logging"
)

const (
	draftKey     = "registration_draft"
	deviceKeyKey = "device_key"
)

type Store struct {
	db  *sql.DB
	log logging.Logger
}

func NewStore(db *sql.DB, log logging.Logger) *Store {
	return &Store{db: db, log: log.With("component", "draft")}
}

func (s *Store) repo() metadata.Repository {
	return metadata.NewSQLiteRepository(s.db)
}

// deviceKey returns the per-device sealing key, creating it on first use.
func (s *Store) deviceKey(ctx context.Context) ([]byte, error) {
	repo := s.repo()

	key, err := repo.Get(ctx, deviceKeyKey)
	if err != nil {
		return nil, err
	}
	if len(key) == cryptox.KeySize {
		return key, nil
	}

	key, err = cryptox.GenerateKey()
	if err != nil {
		return nil, err
	}
	if err := repo.Set(ctx, deviceKeyKey, key); err != nil {
		return nil, err
	}
	return key, nil
}

// Save writes the entire draft record through to storage. The blob is
// sealed because it carries the typed password.
func (s *Store) Save(ctx context.Context, d models.RegistrationDraft) error {
	key, err := s.deviceKey(ctx)
	if err != nil {
		s.log.Warn(ctx, "draft not persisted", "error", err)
		return err
	}

	plaintext, err := json.Marshal(d)
	if err != nil {
		return err
	}

	boxed, err := cryptox.Seal(plaintext, key)
	if err != nil {
		return err
	}

	if err := s.repo().Set(ctx, draftKey, boxed); err != nil {
		s.log.Warn(ctx, "draft not persisted", "error", err)
		return err
	}
	return nil
}

// Load restores a previously saved draft. The second return is false when
// no draft exists or the stored blob cannot be opened (in which case it is
// treated as absent, never as a fatal error).
func (s *Store) Load(ctx context.Context) (models.RegistrationDraft, bool, error) {
	var d models.RegistrationDraft

	boxed, err := s.repo().Get(ctx, draftKey)
	if err != nil {
		s.log.Warn(ctx, "draft not readable", "error", err)
		return d, false, err
	}
	if len(boxed) == 0 {
		return d, false, nil
	}

	key, err := s.deviceKey(ctx)
	if err != nil {
		return d, false, err
	}

	plaintext, err := cryptox.Open(boxed, key)
	if err != nil {
		s.log.Warn(ctx, "discarding unreadable draft", "error", err)
		return d, false, nil
	}

	if err := json.Unmarshal(plaintext, &d); err != nil {
		s.log.Warn(ctx, "discarding malformed draft", "error", err)
		return d, false, nil
	}
	return d, true, nil
}

// Clear deletes the draft. Idempotent.
func (s *Store) Clear(ctx context.Context) error {
	return s.repo().Delete(ctx, draftKey)
}
