package model

import (
	"errors"
	"strings"
)

type MassType string

const (
	Simple   MassType = "simple"
	Triduum  MassType = "triduum"
	Neuvaine MassType = "neuvaine"
	Trentain MassType = "trentain"
)

// MaxOccurrences is the longest series a booking can request.
const MaxOccurrences = 30

var ErrUnknownMassType = errors.New("type de messe inconnu")

type massRule struct {
	occurrences int
	offering    int
}

var massRules = map[MassType]massRule{
	Simple:   {occurrences: 1, offering: 2000},
	Triduum:  {occurrences: 3, offering: 6000},
	Neuvaine: {occurrences: 9, offering: 18000},
	Trentain: {occurrences: MaxOccurrences, offering: 60000},
}

// ParseMassType is case-insensitive and maps an empty value to Simple. Unknown
// values fall back to Simple unless strict is set.
func ParseMassType(raw string, strict bool) (MassType, error) {
	key := MassType(strings.ToLower(strings.TrimSpace(raw)))
	if key == "" {
		return Simple, nil
	}

	if _, ok := massRules[key]; ok {
		return key, nil
	}

	if strict {
		return "", ErrUnknownMassType
	}

	return Simple, nil
}

func (m MassType) rule() massRule {
	if rule, ok := massRules[m]; ok {
		return rule
	}

	return massRules[Simple]
}

// Occurrences is the number of celebration days the type implies.
func (m MassType) Occurrences() int {
	return m.rule().occurrences
}

// Offering is the suggested contribution for the whole series.
func (m MassType) Offering() int {
	return m.rule().offering
}

// Label is the capitalized name stored with every intention and printed on receipts.
func (m MassType) Label() string {
	if m == "" {
		return ""
	}

	return strings.ToUpper(string(m[:1])) + string(m[1:])
}

type Price struct {
	Offering   int
	ServiceFee int
	Total      int
}

func PriceOf(massType MassType, serviceFee int) Price {
	offering := massType.Offering()

	return Price{
		Offering:   offering,
		ServiceFee: serviceFee,
		Total:      offering + serviceFee,
	}
}
