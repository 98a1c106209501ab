package dto

import "github.com/noah-isme/ski-station-api/internal/models"

// CourseRequest is the payload of POST /course/add and PUT /course/update.
type CourseRequest struct {
	NumCourse  int64             `json:"num_course"`
	Level      int               `json:"level" validate:"gte=0"`
	TypeCourse models.TypeCourse `json:"type_course" validate:"required,oneof=INDIVIDUAL COLLECTIVE_CHILDREN COLLECTIVE_ADULT"`
	Support    models.Support    `json:"support" validate:"required,oneof=SKI SNOWBOARD"`
	Price      float64           `json:"price" validate:"gte=0"`
	TimeSlot   int               `json:"time_slot" validate:"gte=0"`
}
