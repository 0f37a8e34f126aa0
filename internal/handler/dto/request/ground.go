package request

// CreateGroundRequest onboards a new ground under the authenticated admin.
// Times are "HH:MM"; the slot calendar is derived from them.
type CreateGroundRequest struct {
	Name           string `json:"name" binding:"required"`
	City           string `json:"city" binding:"required"`
	BasePriceCents int64  `json:"base_price_cents" binding:"min=0"`
	OpenTime       string `json:"open_time" binding:"required"`
	CloseTime      string `json:"close_time" binding:"required"`
}
