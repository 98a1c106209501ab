package models

// Skier is a resort customer.
type Skier struct {
	NumSkier      int64          `db:"num_skier" json:"num_skier"`
	FirstName     string         `db:"first_name" json:"first_name"`
	LastName      string         `db:"last_name" json:"last_name"`
	DateOfBirth   Date           `db:"date_of_birth" json:"date_of_birth"`
	City          string         `db:"city" json:"city"`
	NumSub        *int64         `db:"num_sub" json:"-"`
	Subscription  *Subscription  `db:"-" json:"subscription"`
	Pistes        []Piste        `db:"-" json:"pistes"`
	Registrations []Registration `db:"-" json:"registrations"`
}

// AssignPiste adds p to the skier's pistes unless it is already there.
func (s *Skier) AssignPiste(p Piste) {
	for _, existing := range s.Pistes {
		if existing.NumPiste == p.NumPiste {
			return
		}
	}
	s.Pistes = append(s.Pistes, p)
}

// AssignSubscription links sub to the skier.
func (s *Skier) AssignSubscription(sub Subscription) {
	s.Subscription = &sub
	s.NumSub = &sub.NumSub
}
