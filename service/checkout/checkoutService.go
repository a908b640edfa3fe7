package checkout

import (
	"context"
	"database/sql"
	"errors"

	"github.com/yukta0302/rentwala/model"
)

// errors used by controllers

type ErrCode string

const (
	ErrEmptyCart ErrCode = "EMPTY_CART"
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

// dto

// LineResult reports what happened to one cart line. A skipped line's item
// vanished between add-to-cart and checkout; it produces no rental record
// and no decrement, but it is reported rather than silently dropped.
type LineResult struct {
	ItemID    int64   `json:"item_id"`
	ItemName  string  `json:"item_name,omitempty"`
	Days      int64   `json:"days"`
	Quantity  int64   `json:"quantity"`
	LineTotal float64 `json:"line_total"`
	Skipped   bool    `json:"skipped"`
	Reason    string  `json:"reason,omitempty"`
}

type Summary struct {
	Lines      []LineResult `json:"lines"`
	Records    int          `json:"records_created"`
	GrandTotal float64      `json:"grand_total"`
}

const reasonGone = "item no longer listed"

type CartRepo interface {
	Lines(ctx context.Context, userID int64) ([]model.CartLine, error)
	Clear(ctx context.Context, userID int64) error
}

type CatalogRepo interface {
	Detail(ctx context.Context, id int64) (*model.Item, error)
}

type LedgerRepo interface {
	InsertWithDecrement(ctx context.Context, rec *model.RentalRecord) error
}

type Service interface {
	// Preview recomputes line totals from current catalog prices without
	// mutating anything.
	Preview(ctx context.Context, userID int64) (*Summary, error)

	// Finalize converts the cart into rental records and inventory
	// decrements, line by line in cart order, then clears the cart. There is
	// no atomicity across lines: an error partway out leaves earlier lines
	// committed and the cart untouched.
	Finalize(ctx context.Context, userID int64, userEmail, shippingAddress, paymentMethod string) (*Summary, error)
}

type service struct {
	cart    CartRepo
	catalog CatalogRepo
	ledger  LedgerRepo
}

func New(cart CartRepo, catalog CatalogRepo, ledger LedgerRepo) Service {
	return &service{cart: cart, catalog: catalog, ledger: ledger}
}

func (s *service) Preview(ctx context.Context, userID int64) (*Summary, error) {
	lines, err := s.cart.Lines(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, makeErr(ErrEmptyCart)
	}

	sum := &Summary{}
	for _, line := range lines {
		res, it, err := s.resolve(ctx, line)
		if err != nil {
			return nil, err
		}
		if it != nil {
			sum.GrandTotal += res.LineTotal
		}
		sum.Lines = append(sum.Lines, res)
	}
	return sum, nil
}

func (s *service) Finalize(ctx context.Context, userID int64, userEmail, shippingAddress, paymentMethod string) (*Summary, error) {
	lines, err := s.cart.Lines(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, makeErr(ErrEmptyCart)
	}

	sum := &Summary{}
	for _, line := range lines {
		res, it, err := s.resolve(ctx, line)
		if err != nil {
			return nil, err
		}
		if it == nil {
			sum.Lines = append(sum.Lines, res)
			continue
		}

		rec := &model.RentalRecord{
			UserEmail:       userEmail,
			ItemID:          it.ID,
			ItemName:        it.Name,
			Days:            line.Days,
			Quantity:        line.Quantity,
			PaymentMethod:   paymentMethod,
			ShippingAddress: shippingAddress,
			TotalAmount:     res.LineTotal,
		}
		// Record and decrement commit together, one transaction per line.
		// The decrement has no availability floor: the arithmetic runs in
		// the database, so concurrent checkouts cannot lose updates, but
		// the result may go negative.
		if err := s.ledger.InsertWithDecrement(ctx, rec); err != nil {
			return nil, err
		}

		sum.Records++
		sum.GrandTotal += res.LineTotal
		sum.Lines = append(sum.Lines, res)
	}

	if err := s.cart.Clear(ctx, userID); err != nil {
		return nil, err
	}
	return sum, nil
}

// resolve looks the line's item up and prices it. A dangling reference comes
// back as a skipped LineResult with a nil item.
func (s *service) resolve(ctx context.Context, line model.CartLine) (LineResult, *model.Item, error) {
	it, err := s.catalog.Detail(ctx, line.ItemID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return LineResult{
				ItemID:   line.ItemID,
				Days:     line.Days,
				Quantity: line.Quantity,
				Skipped:  true,
				Reason:   reasonGone,
			}, nil, nil
		}
		return LineResult{}, nil, err
	}

	return LineResult{
		ItemID:    it.ID,
		ItemName:  it.Name,
		Days:      line.Days,
		Quantity:  line.Quantity,
		LineTotal: it.Amount * float64(line.Days) * float64(line.Quantity),
	}, it, nil
}
