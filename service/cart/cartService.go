package cartsvc

import (
	"context"
	"database/sql"
	"errors"

	"github.com/yukta0302/rentwala/model"
)

// ResolvedLine pairs a cart line with its item as it exists right now.
type ResolvedLine struct {
	Item     model.Item `json:"item"`
	Days     int64      `json:"days"`
	Quantity int64      `json:"quantity"`
}

type Repo interface {
	Append(ctx context.Context, userID int64, line model.CartLine) error
	Lines(ctx context.Context, userID int64) ([]model.CartLine, error)
	Clear(ctx context.Context, userID int64) error
}

// Catalog is the read side needed to resolve lines for display.
type Catalog interface {
	Detail(ctx context.Context, id int64) (*model.Item, error)
}

type Service interface {
	// AddLine appends without checking that the item exists or is in stock;
	// existence is resolved lazily at display and checkout time.
	AddLine(ctx context.Context, userID int64, line model.CartLine) error

	// ListLines resolves each line against the catalog. Lines whose item no
	// longer resolves are omitted from the result.
	ListLines(ctx context.Context, userID int64) ([]ResolvedLine, error)

	Clear(ctx context.Context, userID int64) error
}

type service struct {
	r       Repo
	catalog Catalog
}

func New(r Repo, catalog Catalog) Service { return &service{r: r, catalog: catalog} }

func (s *service) AddLine(ctx context.Context, userID int64, line model.CartLine) error {
	if line.ItemID <= 0 || line.Days <= 0 || line.Quantity <= 0 {
		return errors.New("invalid cart line")
	}
	return s.r.Append(ctx, userID, line)
}

func (s *service) ListLines(ctx context.Context, userID int64) ([]ResolvedLine, error) {
	lines, err := s.r.Lines(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]ResolvedLine, 0, len(lines))
	for _, line := range lines {
		it, err := s.catalog.Detail(ctx, line.ItemID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				continue // dangling reference, dropped from display
			}
			return nil, err
		}
		out = append(out, ResolvedLine{Item: *it, Days: line.Days, Quantity: line.Quantity})
	}
	return out, nil
}

func (s *service) Clear(ctx context.Context, userID int64) error {
	return s.r.Clear(ctx, userID)
}
