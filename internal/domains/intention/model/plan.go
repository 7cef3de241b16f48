package model

import (
	"database/sql"
	"errors"
	"fmt"
	"paroisse/shared/constant"
	"paroisse/shared/model"
	"strings"
	"time"
)

const (
	FieldDate = "date"
	FieldTime = "heure"
)

// FormatError reports an occurrence whose date or time does not parse.
type FormatError struct {
	Field      string
	Occurrence int
	Value      string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("format invalide pour %s_%d: %q", e.Field, e.Occurrence, e.Value)
}

// LeadTimeError is returned when the first celebration is too close to now.
type LeadTimeError struct {
	LeadTime time.Duration
}

func (e *LeadTimeError) Error() string {
	if e.LeadTime%time.Hour == 0 {
		return fmt.Sprintf("La première messe doit être dans au moins %d heures.", int(e.LeadTime/time.Hour))
	}

	return fmt.Sprintf("La première messe doit être dans au moins %d minutes.", int(e.LeadTime/time.Minute))
}

// NormalizeDate turns a YYYY-MM-DD date into the stored DD/MM/YYYY form.
func NormalizeDate(raw string) (string, error) {
	date, err := time.Parse(constant.FormDateLayout, strings.TrimSpace(raw))
	if err != nil {
		return "", &FormatError{Field: FieldDate, Value: raw}
	}

	return date.Format(constant.StoredDateLayout), nil
}

// DenormalizeDate is the inverse of NormalizeDate.
func DenormalizeDate(stored string) (string, error) {
	date, err := time.Parse(constant.StoredDateLayout, stored)
	if err != nil {
		return "", &FormatError{Field: FieldDate, Value: stored}
	}

	return date.Format(constant.FormDateLayout), nil
}

// NormalizeTime accepts "18:30", "18h30" or "18H30" and returns "18:30".
func NormalizeTime(raw string) (string, error) {
	clean := strings.NewReplacer("h", ":", "H", ":").Replace(strings.TrimSpace(raw))

	parsed, err := time.Parse(constant.StoredTimeLayout, clean)
	if err != nil {
		return "", &FormatError{Field: FieldTime, Value: raw}
	}

	return parsed.Format(constant.StoredTimeLayout), nil
}

func DefaultText(occurrence int) string {
	return fmt.Sprintf("Intention pour le jour %d", occurrence)
}

// Slot is the raw input of one occurrence.
type Slot struct {
	Date string
	Time string
	Text string
}

func (s Slot) complete() bool {
	return strings.TrimSpace(s.Date) != "" && strings.TrimSpace(s.Time) != ""
}

// Batch identifies one booking submission.
type Batch struct {
	Ref      string
	ParishID int64
	Donor    string
	MassType MassType
}

// Plan is the validated outcome of a submission, ready to be committed.
type Plan struct {
	Records []Intention
	Skipped []int
}

// Plan stages one record per complete slot from 1 to the type's occurrence
// count. Incomplete slots are skipped. Occurrence 1, when present, must start
// at least leadTime after now. Any error discards the whole plan.
func (b Batch) Plan(slots map[int]Slot, now time.Time, leadTime time.Duration) (Plan, error) {
	total := b.MassType.Occurrences()
	plan := Plan{Records: make([]Intention, 0, total)}

	for idx := 1; idx <= total; idx++ {
		slot, ok := slots[idx]
		if !ok || !slot.complete() {
			plan.Skipped = append(plan.Skipped, idx)

			continue
		}

		record, err := b.stage(idx, slot, now)
		if err != nil {
			return Plan{}, err
		}

		if idx == 1 {
			if err := checkLeadTime(idx, slot, now, leadTime); err != nil {
				return Plan{}, err
			}
		}

		plan.Records = append(plan.Records, record)
	}

	return plan, nil
}

func (b Batch) stage(idx int, slot Slot, now time.Time) (Intention, error) {
	date, err := NormalizeDate(slot.Date)
	if err != nil {
		return Intention{}, withOccurrence(err, idx)
	}

	hour, err := NormalizeTime(slot.Time)
	if err != nil {
		return Intention{}, withOccurrence(err, idx)
	}

	text := strings.TrimSpace(slot.Text)
	if text == "" {
		text = DefaultText(idx)
	}

	return Intention{
		BookingRef:      b.Ref,
		Donor:           strings.TrimSpace(b.Donor),
		ParishID:        sql.NullInt64{Int64: b.ParishID, Valid: true},
		CelebrationDate: date,
		CelebrationTime: hour,
		MassType:        b.MassType.Label(),
		Text:            text,
		Occurrence:      idx,
		Metadata:        model.NewMetadata(now),
	}, nil
}

func checkLeadTime(idx int, slot Slot, now time.Time, leadTime time.Duration) error {
	hour, _ := NormalizeTime(slot.Time)

	moment, err := time.ParseInLocation(constant.FormDateLayout+" "+constant.StoredTimeLayout,
		strings.TrimSpace(slot.Date)+" "+hour, now.Location())
	if err != nil {
		return &FormatError{Field: FieldDate, Occurrence: idx, Value: slot.Date}
	}

	if moment.Before(now.Add(leadTime)) {
		return &LeadTimeError{LeadTime: leadTime}
	}

	return nil
}

func withOccurrence(err error, idx int) error {
	var fe *FormatError
	if errors.As(err, &fe) {
		fe.Occurrence = idx

		return fe
	}

	return err
}
