package memstore

import (
	"testing"

	"github.com/endopredict/api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountStore_GetUnknown(t *testing.T) {
	s := NewAccountStore()
	_, err := s.Get("nobody@b.com")
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestAccountStore_PutThenGet(t *testing.T) {
	s := NewAccountStore()
	s.Put(&domain.Account{Email: "a@b.com", Name: "Ann", Password: "secret"})

	a, err := s.Get("a@b.com")
	require.NoError(t, err)
	assert.Equal(t, "Ann", a.Name)
	assert.Equal(t, "secret", a.Password)
}

func TestAccountStore_PutOverwrites(t *testing.T) {
	s := NewAccountStore()
	s.Put(&domain.Account{Email: "a@b.com", Name: "Ann", Password: "old"})
	s.Put(&domain.Account{Email: "a@b.com", Name: "Annie", Password: "new"})

	a, err := s.Get("a@b.com")
	require.NoError(t, err)
	assert.Equal(t, "Annie", a.Name)
	assert.Equal(t, "new", a.Password)
}

func TestAccountStore_GetReturnsCopy(t *testing.T) {
	s := NewAccountStore()
	s.Put(&domain.Account{Email: "a@b.com", Name: "Ann"})

	a, err := s.Get("a@b.com")
	require.NoError(t, err)
	a.Name = "mutated"

	again, err := s.Get("a@b.com")
	require.NoError(t, err)
	assert.Equal(t, "Ann", again.Name)
}
