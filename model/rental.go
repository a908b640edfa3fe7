// model/rental.go
package model

import "time"

// RentalRecord is one completed rental. Rows are append-only: the item name
// and amount are snapshotted at checkout time and never follow later edits
// to the item.
type RentalRecord struct {
	ID              int64     `json:"id"`
	UserEmail       string    `json:"user_email"`
	ItemID          int64     `json:"item_id"`
	ItemName        string    `json:"item_name"`
	Days            int64     `json:"days"`
	Quantity        int64     `json:"quantity"`
	PaymentMethod   string    `json:"payment_method"`
	ShippingAddress string    `json:"shipping_address"`
	TotalAmount     float64   `json:"total_amount"`
	RentedAt        time.Time `json:"rented_at"`
}
