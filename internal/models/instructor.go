package models

// Instructor teaches courses.
type Instructor struct {
	NumInstructor int64    `db:"num_instructor" json:"num_instructor"`
	FirstName     string   `db:"first_name" json:"first_name"`
	LastName      string   `db:"last_name" json:"last_name"`
	DateOfHire    Date     `db:"date_of_hire" json:"date_of_hire"`
	Support       *Support `db:"support" json:"support,omitempty"`
	Courses       []Course `db:"-" json:"courses"`
}

// AssignCourse adds c to the instructor's courses unless it is already there.
func (i *Instructor) AssignCourse(c Course) {
	for _, existing := range i.Courses {
		if existing.NumCourse == c.NumCourse {
			return
		}
	}
	i.Courses = append(i.Courses, c)
}
