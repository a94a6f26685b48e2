package domain

import "time"

// Category classifies what kind of engagement an activity records.
type Category string

const (
	CategoryStudy   Category = "Study"
	CategoryCoding  Category = "Coding"
	CategoryWork    Category = "Work"
	CategoryReading Category = "Reading"
	CategoryRest    Category = "Rest"
	CategorySocial  Category = "Social"
	CategoryOther   Category = "Other"
)

// Categories lists every valid category in canonical order.
var Categories = []Category{
	CategoryStudy,
	CategoryCoding,
	CategoryWork,
	CategoryReading,
	CategoryRest,
	CategorySocial,
	CategoryOther,
}

// Valid reports whether the category is one of the known set.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// InterruptionType classifies what broke the user's attention.
type InterruptionType string

const (
	InterruptionPhone       InterruptionType = "Phone"
	InterruptionSocialMedia InterruptionType = "Social Media"
	InterruptionNoise       InterruptionType = "Noise"
	InterruptionOther       InterruptionType = "Other"
)

// InterruptionTypes lists every valid type in canonical order. Aggregations
// that break ties between types scan in this order.
var InterruptionTypes = []InterruptionType{
	InterruptionPhone,
	InterruptionSocialMedia,
	InterruptionNoise,
	InterruptionOther,
}

// Valid reports whether the interruption type is one of the known set.
func (t InterruptionType) Valid() bool {
	for _, known := range InterruptionTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Activity is a logged session of engaged time stored in PostgreSQL.
type Activity struct {
	ID        string
	UserID    string
	Category  Category
	StartTime time.Time
	EndTime   time.Time
	Note      string
	CreatedAt time.Time
}

// DurationMinutes returns the logged length of the session in minutes.
// Invalid intervals (end before start) clamp to zero.
func (a Activity) DurationMinutes() float64 {
	minutes := a.EndTime.Sub(a.StartTime).Minutes()
	if minutes < 0 {
		return 0
	}
	return minutes
}

// Interruption is a logged distraction event, optionally linked to an activity.
type Interruption struct {
	ID          string
	UserID      string
	ActivityID  *string
	Time        time.Time
	EndTime     *time.Time
	DurationMin *int
	Type        InterruptionType
	Note        string
	CreatedAt   time.Time
}
