package dto

import "github.com/noah-isme/ski-station-api/internal/models"

// SkierRequest is the payload of POST /skier/add and /skier/addAndAssign.
// Registrations only carry week numbers; the course comes from the path.
type SkierRequest struct {
	FirstName     string                `json:"first_name" validate:"required,max=128"`
	LastName      string                `json:"last_name" validate:"required,max=128"`
	DateOfBirth   models.Date           `json:"date_of_birth"`
	City          string                `json:"city" validate:"max=128"`
	Subscription  *SubscriptionRequest  `json:"subscription" validate:"omitempty"`
	Registrations []RegistrationRequest `json:"registrations" validate:"omitempty,dive"`
}

// SkierWithRejections reports a created skier alongside weeks the eligibility checks refused.
type SkierWithRejections struct {
	Skier    *models.Skier  `json:"skier"`
	Rejected []RejectedWeek `json:"rejected"`
}

// RejectedWeek names a week that could not be booked and why.
type RejectedWeek struct {
	NumWeek int                    `json:"num_week"`
	Reason  models.RejectionReason `json:"reason"`
}
