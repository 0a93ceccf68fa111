package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// NA is the sentinel for any unknown canonical field.
const NA = "N/A"

// Accepted registration date layouts, tried in order.
var dateLayouts = []string{"02-01-2006", "02/01/2006", "2006-01-02", "2006/01/02"}

// VehicleAge is a whole number of years, or unknown. It encodes to JSON as a
// number or the string "N/A".
type VehicleAge struct {
	years int
	known bool
}

// AgeYears returns a known age.
func AgeYears(n int) VehicleAge { return VehicleAge{years: n, known: true} }

// AgeUnknown returns the N/A age.
func AgeUnknown() VehicleAge { return VehicleAge{} }

// Years returns the age and whether it is known.
func (a VehicleAge) Years() (int, bool) { return a.years, a.known }

func (a VehicleAge) String() string {
	if !a.known {
		return NA
	}
	return strconv.Itoa(a.years)
}

func (a VehicleAge) MarshalJSON() ([]byte, error) {
	if !a.known {
		return json.Marshal(NA)
	}
	return []byte(strconv.Itoa(a.years)), nil
}

func (a *VehicleAge) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if n, err := strconv.Atoi(s); err == nil {
			*a = AgeYears(n)
			return nil
		}
		*a = AgeUnknown()
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*a = AgeYears(n)
	return nil
}

// ParseDate parses s with the first matching registration date layout.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" || s == NA {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ComputeVehicleAge returns whole years between a registration date and now.
// The age drops by one until this year's anniversary has passed. Unparseable,
// empty and future dates are unknown.
func ComputeVehicleAge(now time.Time, registrationDate string) VehicleAge {
	reg, ok := ParseDate(registrationDate)
	if !ok {
		return AgeUnknown()
	}

	age := now.Year() - reg.Year()
	if now.Month() < reg.Month() || (now.Month() == reg.Month() && now.Day() < reg.Day()) {
		age--
	}
	if age < 0 {
		return AgeUnknown()
	}
	return AgeYears(age)
}
