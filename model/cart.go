// model/cart.go
package model

// CartLine is one pending rental intent. It holds a weak reference to the
// item: nothing guarantees the item still exists when the line is read back.
type CartLine struct {
	ItemID   int64 `json:"item_id"`
	Days     int64 `json:"days"`
	Quantity int64 `json:"quantity"`
}
