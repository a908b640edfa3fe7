package rental

import (
	"context"
	"database/sql"
	"errors"

	"github.com/yukta0302/rentwala/model"
)

// errors used by controllers

type ErrCode string

const (
	ErrNotFound    ErrCode = "ITEM_NOT_FOUND"
	ErrUnavailable ErrCode = "ITEM_UNAVAILABLE"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

const directPaymentMethod = "in_person"

type CatalogRepo interface {
	Detail(ctx context.Context, id int64) (*model.Item, error)
	RentOne(ctx context.Context, id int64) (*model.Item, error)
}

type LedgerRepo interface {
	Insert(ctx context.Context, rec *model.RentalRecord) error
	ListByUser(ctx context.Context, email string) ([]model.RentalRecord, error)
}

type Service interface {
	// RentNow takes one unit immediately, bypassing the cart. The decrement
	// is a conditional compare-and-decrement, so it fails with
	// ErrUnavailable instead of overselling, and it writes a ledger record
	// like the checkout path does.
	RentNow(ctx context.Context, userEmail string, itemID int64) (*model.Item, error)

	// MyHistory lists the user's ledger rows, newest first.
	MyHistory(ctx context.Context, userEmail string) ([]model.RentalRecord, error)
}

type service struct {
	catalog CatalogRepo
	ledger  LedgerRepo
}

func New(catalog CatalogRepo, ledger LedgerRepo) Service {
	return &service{catalog: catalog, ledger: ledger}
}

func (s *service) RentNow(ctx context.Context, userEmail string, itemID int64) (*model.Item, error) {
	// Existence first, so an absent item reads as not-found rather than
	// out-of-stock.
	if _, err := s.catalog.Detail(ctx, itemID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, makeErr(ErrNotFound)
		}
		return nil, err
	}

	it, err := s.catalog.RentOne(ctx, itemID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, makeErr(ErrUnavailable)
		}
		return nil, err
	}

	rec := &model.RentalRecord{
		UserEmail:     userEmail,
		ItemID:        it.ID,
		ItemName:      it.Name,
		Days:          1,
		Quantity:      1,
		PaymentMethod: directPaymentMethod,
		TotalAmount:   it.Amount,
	}
	if err := s.ledger.Insert(ctx, rec); err != nil {
		return nil, err
	}
	return it, nil
}

func (s *service) MyHistory(ctx context.Context, userEmail string) ([]model.RentalRecord, error) {
	return s.ledger.ListByUser(ctx, userEmail)
}
