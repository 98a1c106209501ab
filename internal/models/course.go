package models

// Course is a weekly lesson offer.
type Course struct {
	NumCourse  int64      `db:"num_course" json:"num_course"`
	Level      int        `db:"level" json:"level"`
	TypeCourse TypeCourse `db:"type_course" json:"type_course"`
	Support    Support    `db:"support" json:"support"`
	Price      float64    `db:"price" json:"price"`
	TimeSlot   int        `db:"time_slot" json:"time_slot"`
}
