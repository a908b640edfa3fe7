package rental

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yukta0302/rentwala/model"
)

type catalogMock struct {
	detailFn  func(ctx context.Context, id int64) (*model.Item, error)
	rentOneFn func(ctx context.Context, id int64) (*model.Item, error)
}

func (m *catalogMock) Detail(ctx context.Context, id int64) (*model.Item, error) {
	return m.detailFn(ctx, id)
}
func (m *catalogMock) RentOne(ctx context.Context, id int64) (*model.Item, error) {
	return m.rentOneFn(ctx, id)
}

type ledgerMock struct {
	records []model.RentalRecord
	listFn  func(ctx context.Context, email string) ([]model.RentalRecord, error)
}

func (m *ledgerMock) Insert(ctx context.Context, rec *model.RentalRecord) error {
	m.records = append(m.records, *rec)
	return nil
}
func (m *ledgerMock) ListByUser(ctx context.Context, email string) ([]model.RentalRecord, error) {
	return m.listFn(ctx, email)
}

func TestRentNow_NotFound(t *testing.T) {
	cat := &catalogMock{
		detailFn: func(ctx context.Context, id int64) (*model.Item, error) { return nil, sql.ErrNoRows },
	}
	ledger := &ledgerMock{}
	s := New(cat, ledger)

	_, err := s.RentNow(context.Background(), "u@example.com", 99)
	require.Equal(t, ErrNotFound, Code(err))
	require.Empty(t, ledger.records)
}

func TestRentNow_Unavailable(t *testing.T) {
	cat := &catalogMock{
		detailFn: func(ctx context.Context, id int64) (*model.Item, error) {
			return &model.Item{ID: id, Name: "Ladder", Quantity: 0}, nil
		},
		rentOneFn: func(ctx context.Context, id int64) (*model.Item, error) {
			// compare-and-decrement finds quantity < 1
			return nil, sql.ErrNoRows
		},
	}
	ledger := &ledgerMock{}
	s := New(cat, ledger)

	_, err := s.RentNow(context.Background(), "u@example.com", 4)
	require.Equal(t, ErrUnavailable, Code(err))
	require.Empty(t, ledger.records)
}

func TestRentNow_Success(t *testing.T) {
	cat := &catalogMock{
		detailFn: func(ctx context.Context, id int64) (*model.Item, error) {
			return &model.Item{ID: id, Name: "Ladder", Amount: 12, Quantity: 3}, nil
		},
		rentOneFn: func(ctx context.Context, id int64) (*model.Item, error) {
			return &model.Item{ID: id, Name: "Ladder", Amount: 12, Quantity: 2}, nil
		},
	}
	ledger := &ledgerMock{}
	s := New(cat, ledger)

	it, err := s.RentNow(context.Background(), "u@example.com", 4)
	require.NoError(t, err)
	require.Equal(t, int64(2), it.Quantity)

	// direct rent writes a ledger row like checkout does
	require.Len(t, ledger.records, 1)
	rec := ledger.records[0]
	require.Equal(t, "u@example.com", rec.UserEmail)
	require.Equal(t, int64(1), rec.Days)
	require.Equal(t, int64(1), rec.Quantity)
	require.Equal(t, float64(12), rec.TotalAmount)
}

func TestMyHistory_PassThrough(t *testing.T) {
	ledger := &ledgerMock{
		listFn: func(ctx context.Context, email string) ([]model.RentalRecord, error) {
			if email != "u@example.com" {
				return nil, errors.New("wrong email")
			}
			return []model.RentalRecord{{ID: 1}, {ID: 2}}, nil
		},
	}
	s := New(&catalogMock{}, ledger)

	rows, err := s.MyHistory(context.Background(), "u@example.com")
	require.NoError(t, err)
	require.Len(t, rows, 2)
}
