package response

import (
	"time"

	"turfbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type GroundResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	City           string    `json:"city"`
	BasePriceCents int64     `json:"basePriceCents"`
	OpenTime       string    `json:"openTime"`
	CloseTime      string    `json:"closeTime"`
	AverageRating  float64   `json:"averageRating"`
	ReviewCount    int64     `json:"reviewCount"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func FromGroundView(v *queries.GroundView) *GroundResponse {
	var resp GroundResponse
	_ = copier.Copy(&resp, v)
	return &resp
}
