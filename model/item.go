// model/item.go
package model

import "time"

type Item struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	Amount      float64   `json:"amount"` // rental price per day
	Quantity    int64     `json:"quantity"`
	Category    string    `json:"category"`
	OwnerEmail  string    `json:"owner_email"`
	CreatedAt   time.Time `json:"created_at"`
}
