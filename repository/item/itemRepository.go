package itemrepo

import (
	"context"
	"database/sql"

	"github.com/yukta0302/rentwala/model"
)

type Repo interface {
	Create(ctx context.Context, it *model.Item) error
	List(ctx context.Context) ([]model.Item, error)
	Detail(ctx context.Context, id int64) (*model.Item, error)
	SearchByName(ctx context.Context, query string) ([]model.Item, error)
	ListByCategory(ctx context.Context, name string) ([]model.Item, error)

	// RentOne is a conditional compare-and-decrement: it takes one unit only
	// while quantity >= 1 and returns the updated row. sql.ErrNoRows means
	// the item is out of stock or absent.
	RentOne(ctx context.Context, id int64) (*model.Item, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

const itemCols = `id, name, description, COALESCE(image_url,''), amount, quantity, category, owner_email, created_at`

func scanItem(row interface{ Scan(...any) error }, it *model.Item) error {
	return row.Scan(&it.ID, &it.Name, &it.Description, &it.ImageURL,
		&it.Amount, &it.Quantity, &it.Category, &it.OwnerEmail, &it.CreatedAt)
}

func (r *repo) Create(ctx context.Context, it *model.Item) error {
	const q = `
INSERT INTO items (name, description, image_url, amount, quantity, category, owner_email)
VALUES ($1,$2,NULLIF($3,''),$4,$5,$6,$7)
RETURNING id, created_at`
	return r.db.QueryRowContext(ctx, q,
		it.Name, it.Description, it.ImageURL, it.Amount, it.Quantity, it.Category, it.OwnerEmail,
	).Scan(&it.ID, &it.CreatedAt)
}

func (r *repo) List(ctx context.Context) ([]model.Item, error) {
	const q = `SELECT ` + itemCols + ` FROM items ORDER BY id DESC`
	return r.queryItems(ctx, q)
}

func (r *repo) Detail(ctx context.Context, id int64) (*model.Item, error) {
	const q = `SELECT ` + itemCols + ` FROM items WHERE id=$1`
	var it model.Item
	if err := scanItem(r.db.QueryRowContext(ctx, q, id), &it); err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *repo) SearchByName(ctx context.Context, query string) ([]model.Item, error) {
	// Case-insensitive substring, no ranking.
	const q = `SELECT ` + itemCols + ` FROM items WHERE name ILIKE '%' || $1 || '%' ORDER BY id DESC`
	return r.queryItems(ctx, q, query)
}

func (r *repo) ListByCategory(ctx context.Context, name string) ([]model.Item, error) {
	// Exact, case-sensitive match on the stored category field.
	const q = `SELECT ` + itemCols + ` FROM items WHERE category = $1 ORDER BY id DESC`
	return r.queryItems(ctx, q, name)
}

func (r *repo) RentOne(ctx context.Context, id int64) (*model.Item, error) {
	const q = `
UPDATE items
SET quantity = quantity - 1
WHERE id = $1 AND quantity >= 1
RETURNING ` + itemCols
	var it model.Item
	if err := scanItem(r.db.QueryRowContext(ctx, q, id), &it); err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *repo) queryItems(ctx context.Context, q string, args ...any) ([]model.Item, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Item
	for rows.Next() {
		var it model.Item
		if err := scanItem(rows, &it); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}
