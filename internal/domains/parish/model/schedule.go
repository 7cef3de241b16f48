package model

import (
	"fmt"
	"strings"
	"time"
)

// HoursToBeAnnounced is the placeholder published until a parish sets its hours.
const HoursToBeAnnounced = "À préciser"

type Weekday string

const (
	Monday    Weekday = "lundi"
	Tuesday   Weekday = "mardi"
	Wednesday Weekday = "mercredi"
	Thursday  Weekday = "jeudi"
	Friday    Weekday = "vendredi"
	Saturday  Weekday = "samedi"
	Sunday    Weekday = "dimanche"
)

// Weekdays lists the recognized days, Monday first.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

var englishWeekdays = map[string]Weekday{
	"monday":    Monday,
	"tuesday":   Tuesday,
	"wednesday": Wednesday,
	"thursday":  Thursday,
	"friday":    Friday,
	"saturday":  Saturday,
	"sunday":    Sunday,
}

// ParseWeekday accepts the French day names, their English equivalents and the
// "h_<day>" form field names, case-insensitively.
func ParseWeekday(raw string) (Weekday, error) {
	key := strings.ToLower(strings.TrimSpace(raw))
	key = strings.TrimPrefix(key, "h_")

	for _, day := range Weekdays {
		if string(day) == key {
			return day, nil
		}
	}

	if day, ok := englishWeekdays[key]; ok {
		return day, nil
	}

	return "", fmt.Errorf("unknown weekday %q", raw)
}

// WeekdayOf maps a time.Weekday to the schedule key.
func WeekdayOf(day time.Weekday) Weekday {
	return [...]Weekday{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}[day]
}

// Column is the parishes column holding this day's hours.
func (d Weekday) Column() string {
	return "hours_" + englishName(d)
}

func englishName(d Weekday) string {
	for name, day := range englishWeekdays {
		if day == d {
			return name
		}
	}

	return ""
}

// Schedule is the published celebration-hours text for each day of the week.
type Schedule struct {
	Monday    string `db:"hours_monday"`
	Tuesday   string `db:"hours_tuesday"`
	Wednesday string `db:"hours_wednesday"`
	Thursday  string `db:"hours_thursday"`
	Friday    string `db:"hours_friday"`
	Saturday  string `db:"hours_saturday"`
	Sunday    string `db:"hours_sunday"`
}

// DefaultSchedule has every day set to HoursToBeAnnounced.
func DefaultSchedule() Schedule {
	return Schedule{
		Monday:    HoursToBeAnnounced,
		Tuesday:   HoursToBeAnnounced,
		Wednesday: HoursToBeAnnounced,
		Thursday:  HoursToBeAnnounced,
		Friday:    HoursToBeAnnounced,
		Saturday:  HoursToBeAnnounced,
		Sunday:    HoursToBeAnnounced,
	}
}

func (s *Schedule) field(day Weekday) *string {
	switch day {
	case Monday:
		return &s.Monday
	case Tuesday:
		return &s.Tuesday
	case Wednesday:
		return &s.Wednesday
	case Thursday:
		return &s.Thursday
	case Friday:
		return &s.Friday
	case Saturday:
		return &s.Saturday
	case Sunday:
		return &s.Sunday
	}

	return nil
}

// Hours returns the text published for day.
func (s Schedule) Hours(day Weekday) string {
	if f := s.field(day); f != nil {
		return *f
	}

	return ""
}

// Set applies hours per day. Nothing is changed if any key is not a recognized
// weekday. It returns the columns that were assigned.
func (s *Schedule) Set(hours map[Weekday]string) ([]string, error) {
	for day := range hours {
		if s.field(day) == nil {
			return nil, fmt.Errorf("unknown weekday %q", day)
		}
	}

	columns := make([]string, 0, len(hours))

	for _, day := range Weekdays {
		value, ok := hours[day]
		if !ok {
			continue
		}

		*s.field(day) = value
		columns = append(columns, day.Column())
	}

	return columns, nil
}

// Columns maps every day's column to its current text.
func (s Schedule) Columns() map[string]any {
	columns := make(map[string]any, len(Weekdays))
	for _, day := range Weekdays {
		columns[day.Column()] = s.Hours(day)
	}

	return columns
}
