package lock_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"

	"github.com/tartampluch/go-vivace/internal/config"
	"github.com/tartampluch/go-vivace/internal/lock"
)

func TestStore_DefaultPassword(t *testing.T) {
	keyring.MockInit()
	s := lock.Store{}

	pw, err := s.Password()
	require.NoError(t, err)
	assert.Equal(t, config.DefaultLockPassword, pw)

	assert.NoError(t, s.Verify("password"))
	assert.ErrorIs(t, s.Verify("hunter2"), lock.ErrPasswordMismatch)
}

func TestStore_SetVerifyClear(t *testing.T) {
	keyring.MockInit()
	s := lock.Store{}

	require.NoError(t, s.Set("correct horse"))
	assert.NoError(t, s.Verify("correct horse"))
	assert.ErrorIs(t, s.Verify("password"), lock.ErrPasswordMismatch, "default no longer applies")
	assert.ErrorIs(t, s.Verify(""), lock.ErrPasswordMismatch)

	require.NoError(t, s.Clear())
	assert.NoError(t, s.Verify("password"))

	// Clearing twice is fine.
	assert.NoError(t, s.Clear())
}

func TestStore_SetEmpty(t *testing.T) {
	keyring.MockInit()
	assert.ErrorIs(t, lock.Store{}.Set(""), lock.ErrPasswordEmpty)
}

func TestStore_SeparateUsers(t *testing.T) {
	keyring.MockInit()
	a := lock.Store{User: "alice"}
	b := lock.Store{User: "bob"}

	require.NoError(t, a.Set("secret-a"))
	assert.NoError(t, a.Verify("secret-a"))
	assert.NoError(t, b.Verify("password"), "other users keep the default")
}

func TestStore_KeyringFailure(t *testing.T) {
	boom := errors.New("keyring locked")
	keyring.MockInitWithError(boom)
	s := lock.Store{}

	err := s.Set("anything")
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), config.ErrKeyringWrite)

	err = s.Verify("password")
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), config.ErrKeyringRead)

	assert.ErrorIs(t, s.Clear(), boom)
}
