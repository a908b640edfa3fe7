package cartsvc_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/yukta0302/rentwala/model"
	cartsvc "github.com/yukta0302/rentwala/service/cart"
)

type repoMock struct {
	appendFn func(ctx context.Context, userID int64, line model.CartLine) error
	linesFn  func(ctx context.Context, userID int64) ([]model.CartLine, error)
	clearFn  func(ctx context.Context, userID int64) error
}

func (m *repoMock) Append(ctx context.Context, userID int64, line model.CartLine) error {
	return m.appendFn(ctx, userID, line)
}
func (m *repoMock) Lines(ctx context.Context, userID int64) ([]model.CartLine, error) {
	return m.linesFn(ctx, userID)
}
func (m *repoMock) Clear(ctx context.Context, userID int64) error { return m.clearFn(ctx, userID) }

type catalogMock struct {
	detailFn func(ctx context.Context, id int64) (*model.Item, error)
}

func (m *catalogMock) Detail(ctx context.Context, id int64) (*model.Item, error) {
	return m.detailFn(ctx, id)
}

func TestAddLine_Validation(t *testing.T) {
	s := cartsvc.New(&repoMock{}, &catalogMock{})
	bad := []model.CartLine{
		{ItemID: 0, Days: 2, Quantity: 1},
		{ItemID: 5, Days: 0, Quantity: 1},
		{ItemID: 5, Days: 2, Quantity: 0},
		{ItemID: 5, Days: -1, Quantity: 1},
	}
	for _, line := range bad {
		if err := s.AddLine(context.Background(), 1, line); err == nil {
			t.Fatalf("expected error for line %+v", line)
		}
	}
}

func TestAddLine_NoExistenceCheck(t *testing.T) {
	var appended *model.CartLine
	m := &repoMock{
		appendFn: func(ctx context.Context, userID int64, line model.CartLine) error {
			appended = &line
			return nil
		},
	}
	cat := &catalogMock{
		detailFn: func(ctx context.Context, id int64) (*model.Item, error) {
			t.Fatal("add must not resolve the item")
			return nil, nil
		},
	}
	s := cartsvc.New(m, cat)

	// Item 999 does not exist anywhere; add still succeeds.
	if err := s.AddLine(context.Background(), 1, model.CartLine{ItemID: 999, Days: 3, Quantity: 2}); err != nil {
		t.Fatalf("AddLine error: %v", err)
	}
	if appended == nil || appended.ItemID != 999 {
		t.Fatalf("line not appended: %+v", appended)
	}
}

func TestListLines_DropsDangling(t *testing.T) {
	m := &repoMock{
		linesFn: func(ctx context.Context, userID int64) ([]model.CartLine, error) {
			return []model.CartLine{
				{ItemID: 1, Days: 2, Quantity: 1},
				{ItemID: 2, Days: 1, Quantity: 4}, // deleted item
				{ItemID: 3, Days: 7, Quantity: 1},
			}, nil
		},
	}
	cat := &catalogMock{
		detailFn: func(ctx context.Context, id int64) (*model.Item, error) {
			if id == 2 {
				return nil, sql.ErrNoRows
			}
			return &model.Item{ID: id, Name: "Thing"}, nil
		},
	}
	s := cartsvc.New(m, cat)

	rows, err := s.ListLines(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListLines error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows; want 2 (dangling line silently dropped)", len(rows))
	}
	if rows[0].Item.ID != 1 || rows[1].Item.ID != 3 {
		t.Fatalf("wrong rows: %+v", rows)
	}
}

func TestListLines_RepoErrorPropagates(t *testing.T) {
	m := &repoMock{
		linesFn: func(ctx context.Context, userID int64) ([]model.CartLine, error) {
			return []model.CartLine{{ItemID: 1, Days: 1, Quantity: 1}}, nil
		},
	}
	boom := errors.New("db down")
	cat := &catalogMock{
		detailFn: func(ctx context.Context, id int64) (*model.Item, error) { return nil, boom },
	}
	s := cartsvc.New(m, cat)

	if _, err := s.ListLines(context.Background(), 1); !errors.Is(err, boom) {
		t.Fatalf("err = %v; want %v", err, boom)
	}
}

func TestClear(t *testing.T) {
	var cleared int64
	m := &repoMock{
		clearFn: func(ctx context.Context, userID int64) error {
			cleared = userID
			return nil
		},
	}
	s := cartsvc.New(m, &catalogMock{})
	if err := s.Clear(context.Background(), 8); err != nil || cleared != 8 {
		t.Fatalf("Clear got cleared=%d err=%v", cleared, err)
	}
}
