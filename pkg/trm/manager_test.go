package trm

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestManager_Do(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(mock sqlmock.Sqlmock)
		callback func(ctx context.Context) error
		wantErr  bool
	}{
		{
			name: "commit",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectCommit()
			},
			callback: func(ctx context.Context) error { return nil },
		},
		{
			name: "rollback on error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectRollback()
			},
			callback: func(ctx context.Context) error { return assert.AnError },
			wantErr:  true,
		},
		{
			name: "begin fails",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin().WillReturnError(assert.AnError)
			},
			callback: func(ctx context.Context) error {
				t.Fatal("callback must not run")
				return nil
			},
			wantErr: true,
		},
		{
			name: "commit fails",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectCommit().WillReturnError(assert.AnError)
			},
			callback: func(ctx context.Context) error { return nil },
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			tt.setup(mock)

			err := NewManager(db).Do(context.Background(), tt.callback)
			if tt.wantErr {
				assert.ErrorIs(t, err, assert.AnError)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestManager_DoNested(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	m := NewManager(db)
	err := m.Do(context.Background(), func(ctx context.Context) error {
		outer := ExtractTx(ctx)
		require.NotNil(t, outer)
		return m.Do(ctx, func(ctx context.Context) error {
			assert.Same(t, outer, ExtractTx(ctx))
			assert.Same(t, outer, Conn(ctx, db))
			return nil
		})
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestManager_DoPanic(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.Panics(t, func() {
		NewManager(db).Do(context.Background(), func(ctx context.Context) error {
			panic("boom")
		})
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConn_WithoutTx(t *testing.T) {
	db, _ := newMockDB(t)

	assert.Nil(t, ExtractTx(context.Background()))
	assert.Same(t, db, Conn(context.Background(), db))
}
