package models

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	ErrInvalidPlate = errors.New("invalid license plate")

	plateRe = regexp.MustCompile(`^[A-Z0-9]{6,12}$`)
)

// Plate is an uppercased registration number with separators removed.
type Plate string

// NormalizePlate uppercases raw and strips spaces and hyphens without
// validating the result. Resolvers accept any normalized plate.
func NormalizePlate(raw string) Plate {
	s := strings.ToUpper(strings.TrimSpace(raw))
	s = strings.NewReplacer("-", "", " ", "").Replace(s)
	return Plate(s)
}

// ParsePlate normalizes raw and checks it is 6 to 12 alphanumerics.
func ParsePlate(raw string) (Plate, error) {
	p := NormalizePlate(raw)
	if !plateRe.MatchString(string(p)) {
		return "", fmt.Errorf("%w: %q must be 6 to 12 letters or digits", ErrInvalidPlate, raw)
	}
	return p, nil
}

func (p Plate) String() string { return string(p) }

// StateCode is the two-letter RTO state prefix, or "" for short plates.
func (p Plate) StateCode() string {
	if len(p) < 2 {
		return ""
	}
	return string(p[:2])
}
