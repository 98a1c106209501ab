package models

// Subscription is a ski pass. EndDate is derived from TypeSub and StartDate when written.
type Subscription struct {
	NumSub    int64            `db:"num_sub" json:"num_sub"`
	TypeSub   TypeSubscription `db:"type_sub" json:"type_sub"`
	StartDate Date             `db:"start_date" json:"start_date"`
	EndDate   Date             `db:"end_date" json:"end_date"`
	Price     float64          `db:"price" json:"price"`
}
