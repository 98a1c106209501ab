package dto

// RegistrationRequest carries the week of a new registration.
type RegistrationRequest struct {
	NumWeek int `json:"num_week" validate:"required,min=1"`
}
