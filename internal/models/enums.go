package models

// TypeSubscription is the billing period of a subscription.
type TypeSubscription string

const (
	TypeSubscriptionMonthly    TypeSubscription = "MONTHLY"
	TypeSubscriptionSemestriel TypeSubscription = "SEMESTRIEL"
	TypeSubscriptionAnnual     TypeSubscription = "ANNUAL"
)

func (t TypeSubscription) IsValid() bool {
	switch t {
	case TypeSubscriptionMonthly, TypeSubscriptionSemestriel, TypeSubscriptionAnnual:
		return true
	}
	return false
}

// TypeCourse distinguishes one-on-one lessons from group cohorts.
type TypeCourse string

const (
	TypeCourseIndividual         TypeCourse = "INDIVIDUAL"
	TypeCourseCollectiveChildren TypeCourse = "COLLECTIVE_CHILDREN"
	TypeCourseCollectiveAdult    TypeCourse = "COLLECTIVE_ADULT"
)

func (t TypeCourse) IsValid() bool {
	switch t {
	case TypeCourseIndividual, TypeCourseCollectiveChildren, TypeCourseCollectiveAdult:
		return true
	}
	return false
}

// IsCollective reports whether the course type shares a weekly capacity.
func (t TypeCourse) IsCollective() bool {
	return t == TypeCourseCollectiveChildren || t == TypeCourseCollectiveAdult
}

// Support is the activity medium of a course or instructor.
type Support string

const (
	SupportSki       Support = "SKI"
	SupportSnowboard Support = "SNOWBOARD"
)

func (s Support) IsValid() bool {
	return s == SupportSki || s == SupportSnowboard
}

// Color grades piste difficulty.
type Color string

const (
	ColorGreen Color = "GREEN"
	ColorBlue  Color = "BLUE"
	ColorRed   Color = "RED"
	ColorBlack Color = "BLACK"
)

func (c Color) IsValid() bool {
	switch c {
	case ColorGreen, ColorBlue, ColorRed, ColorBlack:
		return true
	}
	return false
}
