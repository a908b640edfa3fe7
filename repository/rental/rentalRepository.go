// repository/rental/repo.go
package rentalrepo

import (
	"context"
	"database/sql"

	"github.com/yukta0302/rentwala/model"
)

// The rentals table is append-only: rows are inserted at checkout or direct
// rent and never updated.
type Repo interface {
	Insert(ctx context.Context, rec *model.RentalRecord) error

	// InsertWithDecrement appends the rental row and applies the inventory
	// decrement for rec.ItemID in one transaction, so a failure on either
	// side commits neither. The decrement is plain arithmetic and may drive
	// quantity negative.
	InsertWithDecrement(ctx context.Context, rec *model.RentalRecord) error

	ListByUser(ctx context.Context, email string) ([]model.RentalRecord, error)
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db: db} }

func (r *repo) Insert(ctx context.Context, rec *model.RentalRecord) error {
	const q = `
		INSERT INTO rentals (user_email, item_id, item_name, days, quantity, payment_method, shipping_address, total_amount)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING id, rented_at`
	return r.db.QueryRowContext(ctx, q,
		rec.UserEmail, rec.ItemID, rec.ItemName, rec.Days, rec.Quantity,
		rec.PaymentMethod, rec.ShippingAddress, rec.TotalAmount,
	).Scan(&rec.ID, &rec.RentedAt)
}

func (r *repo) InsertWithDecrement(ctx context.Context, rec *model.RentalRecord) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	const ins = `
		INSERT INTO rentals (user_email, item_id, item_name, days, quantity, payment_method, shipping_address, total_amount)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING id, rented_at`
	if err = tx.QueryRowContext(ctx, ins,
		rec.UserEmail, rec.ItemID, rec.ItemName, rec.Days, rec.Quantity,
		rec.PaymentMethod, rec.ShippingAddress, rec.TotalAmount,
	).Scan(&rec.ID, &rec.RentedAt); err != nil {
		return err
	}

	const dec = `UPDATE items SET quantity = quantity - $2 WHERE id = $1`
	if _, err = tx.ExecContext(ctx, dec, rec.ItemID, rec.Quantity); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *repo) ListByUser(ctx context.Context, email string) ([]model.RentalRecord, error) {
	const q = `
			SELECT id, user_email, item_id, item_name, days, quantity,
			       payment_method, shipping_address, total_amount, rented_at
			FROM rentals
			WHERE user_email = $1
			ORDER BY rented_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, q, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.RentalRecord
	for rows.Next() {
		var rec model.RentalRecord
		if err := rows.Scan(
			&rec.ID, &rec.UserEmail, &rec.ItemID, &rec.ItemName, &rec.Days, &rec.Quantity,
			&rec.PaymentMethod, &rec.ShippingAddress, &rec.TotalAmount, &rec.RentedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
