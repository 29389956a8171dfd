package trm

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuerierFrom(t *testing.T) {
	db := sqlx.NewDb(nil, "postgres")

	assert.Same(t, db, QuerierFrom(context.Background(), db))

	tx := &sqlx.Tx{}
	ctx := withTx(context.Background(), tx)
	assert.Same(t, tx, ExtractTx(ctx))
	assert.Same(t, tx, QuerierFrom(ctx, db))
}

func TestManager_DoReusesOuterTransaction(t *testing.T) {
	m := NewManager(sqlx.NewDb(nil, "postgres"))
	tx := &sqlx.Tx{}
	ctx := withTx(context.Background(), tx)

	errCallback := errors.New("callback")
	err := m.Do(ctx, func(inner context.Context) error {
		assert.Same(t, tx, ExtractTx(inner))
		return errCallback
	})
	assert.ErrorIs(t, err, errCallback)
}

func TestNopManager(t *testing.T) {
	m := NewNopManager()

	ctx, tx, err := m.BeginTx(context.Background())
	require.NoError(t, err)
	assert.Nil(t, ExtractTx(ctx))
	assert.NoError(t, tx.Commit())
	assert.NoError(t, tx.Rollback())

	calls := 0
	err = m.Do(context.Background(), func(context.Context) error {
		calls++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}
