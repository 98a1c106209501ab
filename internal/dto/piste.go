package dto

import "github.com/noah-isme/ski-station-api/internal/models"

type PisteRequest struct {
	NamePiste string       `json:"name_piste" validate:"required,max=128"`
	Color     models.Color `json:"color" validate:"required,oneof=GREEN BLUE RED BLACK"`
	Length    int          `json:"length" validate:"gte=0"`
	Slope     int          `json:"slope" validate:"gte=0"`
}
