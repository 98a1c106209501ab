package models

// Registration books a skier into a course for one week. A nil NumCourse means the
// registration is waiting for a course assignment.
type Registration struct {
	NumRegistration int64  `db:"num_registration" json:"num_registration"`
	NumWeek         int    `db:"num_week" json:"num_week"`
	NumSkier        int64  `db:"num_skier" json:"num_skier"`
	NumCourse       *int64 `db:"num_course" json:"num_course"`
}

// RosterEntry is a registration joined with its skier for course roster exports.
type RosterEntry struct {
	NumRegistration int64  `db:"num_registration"`
	NumWeek         int    `db:"num_week"`
	NumSkier        int64  `db:"num_skier"`
	FirstName       string `db:"first_name"`
	LastName        string `db:"last_name"`
	City            string `db:"city"`
}

// RejectionReason explains why an eligibility check refused a registration.
type RejectionReason string

const (
	RejectionAlreadyRegistered RejectionReason = "ALREADY_REGISTERED"
	RejectionCourseFull        RejectionReason = "COURSE_FULL"
)

// RegistrationOutcome is the result of an eligibility check. Exactly one of
// Registration and Rejection is set.
type RegistrationOutcome struct {
	Registration *Registration   `json:"registration,omitempty"`
	Rejection    RejectionReason `json:"rejection,omitempty"`
}

// Accepted reports whether the registration was persisted.
func (o RegistrationOutcome) Accepted() bool {
	return o.Registration != nil
}
