// Package policy holds pure business-rule predicates consulted by the
// service layer. Policies are stateless and free of side effects.
package policy

import "time"

// DefaultMinimumAge is the age threshold applied when no override is
// configured.
const DefaultMinimumAge = 18

// AgePolicy decides whether a birth date satisfies a minimum-age
// requirement.
type AgePolicy struct {
	MinimumAge int
}

// Default returns an AgePolicy with the standard threshold.
func Default() AgePolicy {
	return AgePolicy{MinimumAge: DefaultMinimumAge}
}

// New returns an AgePolicy with the given threshold. Non-positive values
// fall back to the default.
func New(minimumAge int) AgePolicy {
	if minimumAge <= 0 {
		return Default()
	}
	return AgePolicy{MinimumAge: minimumAge}
}

// IsAdult reports whether the number of whole calendar years between
// birthDate and today meets the minimum age. The boundary is inclusive:
// a birth date exactly MinimumAge years before today counts as adult.
// Evaluation uses calendar year/month/day only, never elapsed seconds.
func (p AgePolicy) IsAdult(birthDate, today time.Time) bool {
	birthDate = birthDate.UTC()
	today = today.UTC()

	years := today.Year() - birthDate.Year()

	// The birthday hasn't occurred yet this year.
	if today.Month() < birthDate.Month() ||
		(today.Month() == birthDate.Month() && today.Day() < birthDate.Day()) {
		years--
	}

	return years >= p.MinimumAge
}
