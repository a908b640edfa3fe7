package itemsvc

import (
	"context"
	"database/sql"
	"errors"

	"github.com/yukta0302/rentwala/model"
)

// errors used by controllers

type ErrCode string

const (
	ErrNotFound        ErrCode = "ITEM_NOT_FOUND"
	ErrUnknownCategory ErrCode = "UNKNOWN_CATEGORY"
	ErrBadInput        ErrCode = "BAD_INPUT"
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

type Item = model.Item

type Repo interface {
	Create(ctx context.Context, it *model.Item) error
	List(ctx context.Context) ([]model.Item, error)
	Detail(ctx context.Context, id int64) (*model.Item, error)
	SearchByName(ctx context.Context, query string) ([]model.Item, error)
	ListByCategory(ctx context.Context, name string) ([]model.Item, error)
}

type Service interface {
	// CreateListing persists a new catalog item owned by ownerEmail and
	// returns it together with the category path ("" when the category is
	// not one of the fixed set).
	CreateListing(ctx context.Context, it *model.Item, ownerEmail string) (string, error)

	List(ctx context.Context) ([]Item, error)
	Detail(ctx context.Context, id int64) (*Item, error)
	Search(ctx context.Context, query string) ([]Item, error)

	Categories() []model.Category
	// ByCategoryPath resolves a URL path segment against the fixed category
	// table, then filters by the exact display name.
	ByCategoryPath(ctx context.Context, path string) (model.Category, []Item, error)
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) CreateListing(ctx context.Context, it *model.Item, ownerEmail string) (string, error) {
	if it.Name == "" || it.Amount < 0 || it.Quantity < 0 {
		return "", makeErr(ErrBadInput)
	}
	it.OwnerEmail = ownerEmail
	if err := s.r.Create(ctx, it); err != nil {
		return "", err
	}
	return model.CategoryPath(it.Category), nil
}

func (s *service) List(ctx context.Context) ([]Item, error) { return s.r.List(ctx) }

func (s *service) Detail(ctx context.Context, id int64) (*Item, error) {
	it, err := s.r.Detail(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, makeErr(ErrNotFound)
		}
		return nil, err
	}
	return it, nil
}

func (s *service) Search(ctx context.Context, query string) ([]Item, error) {
	return s.r.SearchByName(ctx, query)
}

func (s *service) Categories() []model.Category { return model.Categories }

func (s *service) ByCategoryPath(ctx context.Context, path string) (model.Category, []Item, error) {
	cat, ok := model.CategoryByPath(path)
	if !ok {
		return model.Category{}, nil, makeErr(ErrUnknownCategory)
	}
	items, err := s.r.ListByCategory(ctx, cat.Name)
	if err != nil {
		return model.Category{}, nil, err
	}
	return cat, items, nil
}
