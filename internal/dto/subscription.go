package dto

import "github.com/noah-isme/ski-station-api/internal/models"

// SubscriptionRequest is the payload of subscription writes. EndDate is never read; it is derived.
type SubscriptionRequest struct {
	NumSub    int64                   `json:"num_sub"`
	TypeSub   models.TypeSubscription `json:"type_sub"`
	StartDate models.Date             `json:"start_date"`
	Price     float64                 `json:"price" validate:"gte=0"`
}
