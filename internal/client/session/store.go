// Package session owns the persisted authentication state: JWT, refresh
// token, cached user snapshot and the remember-me flag, all in the local
// metadata table. Screen controllers read copies; only this package writes.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bemgestar/bemgestar/internal/client/api"
	"github.com/bemgestar/bemgestar/internal/client/models"
	"github.com/bemgestar/bemgestar/internal/client/repositories/metadata"
	"github.com/bemgestar/bemgestar/internal/dbx"
	"github.com/bemgestar/bemgestar/internal/logging"
)

// Storage keys. Logout must remove exactly this set.
const (
	keyJWT          = "jwt"
	keyRefreshToken = "refresh_token"
	keyUser         = "user"
	keyRememberMe   = "remember_me"
)

// API is the slice of the HTTP client the store needs.
type API interface {
	Login(ctx context.Context, identifier, password string, requestRefresh bool) (*api.LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*api.RefreshResponse, error)
}

type Store struct {
	api API
	db  *sql.DB
	log logging.Logger
}

func NewStore(apiClient API, db *sql.DB, log logging.Logger) *Store {
	return &Store{api: apiClient, db: db, log: log.With("component", "session")}
}

func (s *Store) repo(db dbx.DBTX) metadata.Repository {
	return metadata.NewSQLiteRepository(db)
}

// Login authenticates and persists the session. The identifier is
// lower-cased before submission; the refresh token and the remember-me flag
// are persisted only when rememberMe is set. Nothing is stored on failure.
func (s *Store) Login(ctx context.Context, identifier, password string, rememberMe bool) (models.Session, error) {
	identifier = strings.ToLower(strings.TrimSpace(identifier))

	resp, err := s.api.Login(ctx, identifier, password, rememberMe)
	if err != nil {
		return models.Session{}, err
	}

	userJSON, err := json.Marshal(resp.User)
	if err != nil {
		userJSON = nil
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo(tx)
		if err := repo.Set(ctx, keyJWT, []byte(resp.JWT)); err != nil {
			return err
		}
		if userJSON != nil {
			if err := repo.Set(ctx, keyUser, userJSON); err != nil {
				return err
			}
		}
		if rememberMe {
			if err := repo.Set(ctx, keyRefreshToken, []byte(resp.RefreshToken)); err != nil {
				return err
			}
			if err := repo.Set(ctx, keyRememberMe, []byte("1")); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		// The server accepted the credentials; a local-storage fault only
		// costs durability, not the session itself.
		s.log.Error(ctx, "failed to persist session", "error", err)
	}

	user := resp.User
	return models.Session{
		Token:        resp.JWT,
		RefreshToken: resp.RefreshToken,
		User:         &user,
		RememberMe:   rememberMe,
	}, nil
}

// Refresh exchanges a refresh token for a new pair and persists both.
// The cached user and the remember-me flag are left untouched.
func (s *Store) Refresh(ctx context.Context, refreshToken string) (models.Session, error) {
	resp, err := s.api.Refresh(ctx, refreshToken)
	if err != nil {
		return models.Session{}, err
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo(tx)
		if err := repo.Set(ctx, keyJWT, []byte(resp.JWT)); err != nil {
			return err
		}
		return repo.Set(ctx, keyRefreshToken, []byte(resp.RefreshToken))
	})
	if err != nil {
		s.log.Error(ctx, "failed to persist refreshed session", "error", err)
	}

	return models.Session{Token: resp.JWT, RefreshToken: resp.RefreshToken}, nil
}

// JWT returns the stored token, or "" when absent or unreadable. Storage
// faults degrade to "not authenticated", never to an error.
func (s *Store) JWT(ctx context.Context) string {
	value, err := s.repo(s.db).Get(ctx, keyJWT)
	if err != nil {
		s.log.Warn(ctx, "failed to read stored jwt", "error", err)
		return ""
	}
	return string(value)
}

// RefreshTokenValue returns the stored refresh token, or "".
func (s *Store) RefreshTokenValue(ctx context.Context) string {
	value, err := s.repo(s.db).Get(ctx, keyRefreshToken)
	if err != nil {
		s.log.Warn(ctx, "failed to read stored refresh token", "error", err)
		return ""
	}
	return string(value)
}

// User returns the cached identity snapshot, or nil when absent or
// undecodable. Display only; never an authorization input.
func (s *Store) User(ctx context.Context) *models.UserSummary {
	value, err := s.repo(s.db).Get(ctx, keyUser)
	if err != nil || len(value) == 0 {
		return nil
	}
	var user models.UserSummary
	if err := json.Unmarshal(value, &user); err != nil {
		s.log.Warn(ctx, "failed to decode cached user", "error", err)
		return nil
	}
	return &user
}

// RememberMe reports whether the remember-me flag was set at login.
func (s *Store) RememberMe(ctx context.Context) bool {
	value, err := s.repo(s.db).Get(ctx, keyRememberMe)
	if err != nil {
		return false
	}
	return string(value) == "1"
}

// Logout removes all four session keys in one transaction. Idempotent.
func (s *Store) Logout(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo(tx)
		for _, key := range []string{keyJWT, keyRefreshToken, keyUser, keyRememberMe} {
			if err := repo.Delete(ctx, key); err != nil {
				return err
			}
		}
		return nil
	})
}

// CheckAuth reports whether the user has a usable session: true when a JWT
// is stored; otherwise, when a refresh token exists and remember-me was set,
// the outcome of a single refresh attempt; otherwise false.
func (s *Store) CheckAuth(ctx context.Context) bool {
	if s.JWT(ctx) != "" {
		return true
	}

	refreshToken := s.RefreshTokenValue(ctx)
	if refreshToken == "" || !s.RememberMe(ctx) {
		return false
	}

	if _, err := s.Refresh(ctx, refreshToken); err != nil {
		s.log.Info(ctx, "session refresh failed", "error", err)
		return false
	}
	return true
}

// TokenExpired reports whether the stored JWT carries an exp claim in the
// past. The claim is read without signature verification; this drives the
// CLI status line only, never an authorization decision.
func (s *Store) TokenExpired(ctx context.Context) bool {
	raw := s.JWT(ctx)
	if raw == "" {
		return false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
