// Package lock keeps the lock-screen password in the OS keyring.
package lock

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"

	"github.com/zalando/go-keyring"

	"github.com/tartampluch/go-vivace/internal/config"
)

var (
	ErrPasswordEmpty    = errors.New(config.ErrPasswordEmpty)
	ErrPasswordMismatch = errors.New(config.ErrPasswordMismatch)
)

// Store reads and writes one keyring entry. The zero value uses the
// application service and the "lock" user.
type Store struct {
	Service string
	User    string
}

func (s Store) service() string {
	if s.Service == "" {
		return config.KeyringService
	}
	return s.Service
}

func (s Store) user() string {
	if s.User == "" {
		return config.KeyringLockUser
	}
	return s.User
}

// Set stores password, replacing any previous one.
func (s Store) Set(password string) error {
	if password == "" {
		return ErrPasswordEmpty
	}
	if err := keyring.Set(s.service(), s.user(), password); err != nil {
		return fmt.Errorf("%s: %w", config.ErrKeyringWrite, err)
	}
	slog.Info(config.MsgPasswordSet, config.LogKeyComponent, config.CompLock)
	return nil
}

// Password returns the stored password, or the default one when the keyring
// has no entry yet.
func (s Store) Password() (string, error) {
	pw, err := keyring.Get(s.service(), s.user())
	if errors.Is(err, keyring.ErrNotFound) {
		slog.Debug(config.MsgPasswordDefault, config.LogKeyComponent, config.CompLock)
		return config.DefaultLockPassword, nil
	}
	if err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrKeyringRead, err)
	}
	return pw, nil
}

// Verify compares candidate with the stored password in constant time.
// A wrong password returns ErrPasswordMismatch.
func (s Store) Verify(candidate string) error {
	want, err := s.Password()
	if err != nil {
		return err
	}
	if subtle.ConstantTimeCompare([]byte(candidate), []byte(want)) != 1 {
		return ErrPasswordMismatch
	}
	slog.Debug(config.MsgPasswordOK, config.LogKeyComponent, config.CompLock)
	return nil
}

// Clear removes the stored password, restoring the default. Clearing an
// absent entry is not an error.
func (s Store) Clear() error {
	err := keyring.Delete(s.service(), s.user())
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("%s: %w", config.ErrKeyringWrite, err)
	}
	return nil
}
