package cart

type AddLineReq struct {
	ItemID   int64 `json:"item_id" validate:"required,gt=0"`
	Days     int64 `json:"days" validate:"required,gt=0"`
	Quantity int64 `json:"quantity" validate:"required,gt=0"`
}
