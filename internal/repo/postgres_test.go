package repo

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/eshop-service/internal/entities"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) (*postgresRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return NewPostgresRepo(sqlx.NewDb(db, "sqlmock")), mock
}

func TestCreateOrderItem(t *testing.T) {
	r, mock := newTestRepo(t)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO order_items (id,product_id,quantity) VALUES ($1,$2,$3)")).
		WithArgs(sqlmock.AnyArg(), "p1", 2).
		WillReturnResult(sqlmock.NewResult(0, 1))

	id, err := r.CreateOrderItem(context.Background(), entities.OrderItem{ProductID: "p1", Quantity: 2})

	require.NoError(t, err)
	assert.NotEmpty(t, id)
}

func TestDeleteOrderItem(t *testing.T) {
	tests := []struct {
		name    string
		rows    int64
		wantErr error
	}{
		{name: "deleted", rows: 1},
		{name: "already gone", rows: 0, wantErr: entities.ErrOrderItemNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, mock := newTestRepo(t)
			mock.ExpectExec(regexp.QuoteMeta("DELETE FROM order_items WHERE id = $1")).
				WithArgs("i1").
				WillReturnResult(sqlmock.NewResult(0, tt.rows))

			err := r.DeleteOrderItem(context.Background(), "i1")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMissingProducts(t *testing.T) {
	r, mock := newTestRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM products WHERE id IN ($1,$2,$3)")).
		WithArgs("p1", "p2", "p3").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("p1").AddRow("p3"))

	missing, err := r.MissingProducts(context.Background(), []string{"p1", "p2", "p3"})

	require.NoError(t, err)
	assert.Equal(t, []string{"p2"}, missing)
}

func TestGetProductPrice_NotFound(t *testing.T) {
	r, mock := newTestRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT price FROM products WHERE id = $1")).
		WithArgs("p1").
		WillReturnRows(sqlmock.NewRows([]string{"price"}))

	_, err := r.GetProductPrice(context.Background(), "p1")

	assert.ErrorIs(t, err, entities.ErrProductNotFound)
}

func TestTotalSales(t *testing.T) {
	r, mock := newTestRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(SUM(total_price), 0) FROM orders")).
		WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow("125.50"))

	total, err := r.TotalSales(context.Background())

	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.RequireFromString("125.5")))
}

func TestDeleteOrder(t *testing.T) {
	dateOrdered := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	r, mock := newTestRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("DELETE FROM orders WHERE id = $1 RETURNING")).
		WithArgs("o1").
		WillReturnRows(sqlmock.NewRows(orderColumns).AddRow(
			"o1", "{i1,i2}", "Main st. 1", "", "Prague", nil,
			"CZ", "+420", "Shipped", "25.50", "u1", dateOrdered,
		))

	order, err := r.DeleteOrder(context.Background(), "o1")

	require.NoError(t, err)
	assert.Equal(t, []string{"i1", "i2"}, order.OrderItems)
	assert.Equal(t, entities.StatusShipped, order.Status)
	assert.Equal(t, "", order.Shipping.Zip)
	assert.Equal(t, dateOrdered, order.DateOrdered)
}

func TestDeleteOrder_NotFound(t *testing.T) {
	r, mock := newTestRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("DELETE FROM orders WHERE id = $1 RETURNING")).
		WithArgs("o1").
		WillReturnRows(sqlmock.NewRows(orderColumns))

	_, err := r.DeleteOrder(context.Background(), "o1")

	assert.ErrorIs(t, err, entities.ErrOrderNotFound)
}
