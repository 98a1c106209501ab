package dto

import "github.com/noah-isme/ski-station-api/internal/models"

// InstructorRequest is the payload of instructor writes.
type InstructorRequest struct {
	NumInstructor int64           `json:"num_instructor"`
	FirstName     string          `json:"first_name" validate:"required,max=128"`
	LastName      string          `json:"last_name" validate:"required,max=128"`
	DateOfHire    models.Date     `json:"date_of_hire"`
	Support       *models.Support `json:"support" validate:"omitempty,oneof=SKI SNOWBOARD"`
}
