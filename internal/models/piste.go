package models

// Piste is a run of the resort.
type Piste struct {
	NumPiste  int64  `db:"num_piste" json:"num_piste"`
	NamePiste string `db:"name_piste" json:"name_piste"`
	Color     Color  `db:"color" json:"color"`
	Length    int    `db:"length" json:"length"`
	Slope     int    `db:"slope" json:"slope"`
}
