package kvstore

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseStore(t *testing.T, s Store) {
	ctx := context.Background()

	_, err := s.Get(ctx, "skillio_v6_services")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Put(ctx, "skillio_v6_services", []byte(`[{"id":"t1"}]`)))
	require.NoError(t, s.Put(ctx, "skillio_v6_services", []byte(`[{"id":"t2"}]`)))

	got, err := s.Get(ctx, "skillio_v6_services")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"t2"}]`, string(got))
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	s := NewMemoryStore()
	buf := []byte("abc")
	require.NoError(t, s.Put(context.Background(), "k", buf))
	buf[0] = 'z'

	got, err := s.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))
}

func TestSQLiteStore(t *testing.T) {
	s, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	defer s.Close()

	exerciseStore(t, s)
}

func TestSQLiteStorePropagatesDriverErrors(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	s := NewSQLiteStore(sqlx.NewDb(db, "sqlmock"))

	mock.ExpectQuery("SELECT value FROM kv").
		WithArgs("skillio_v6_bookings").
		WillReturnError(errors.New("disk I/O error"))
	mock.ExpectExec("INSERT INTO kv").
		WillReturnError(errors.New("database is locked"))

	_, err = s.Get(context.Background(), "skillio_v6_bookings")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "disk I/O error")

	err = s.Put(context.Background(), "skillio_v6_bookings", []byte("[]"))
	assert.Contains(t, err.Error(), "database is locked")

	assert.NoError(t, mock.ExpectationsWereMet())
}
