package models

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Plate
		wantErr bool
	}{
		{"plain", "MH12AB1234", "MH12AB1234", false},
		{"lowercase with separators", "dl-01 ab-1234", "DL01AB1234", false},
		{"too short", "AB12", "", true},
		{"too long", "ABCDEFGHIJKLM", "", true},
		{"punctuation", "MH12#B1234", "", true},
		{"empty", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePlate(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidPlate))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPlateStateCode(t *testing.T) {
	assert.Equal(t, "MH", NormalizePlate("mh12ab1234").StateCode())
	assert.Equal(t, "", NormalizePlate("M").StateCode())
}

func TestComputeVehicleAge(t *testing.T) {
	now := time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"day-month-year", "01-01-2020", "4"},
		{"year-month-day", "2020-01-01", "4"},
		{"slashes", "01/01/2020", "4"},
		{"year first slashes", "2020/01/01", "4"},
		{"anniversary not yet reached", "15-06-2020", "3"},
		{"anniversary today", "01-06-2020", "4"},
		{"registered this year", "01-01-2024", "0"},
		{"future date", "01-01-2030", NA},
		{"later this year", "02-06-2024", NA},
		{"empty", "", NA},
		{"sentinel", "N/A", NA},
		{"garbage", "yesterday", NA},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeVehicleAge(now, tt.input).String())
		})
	}
}

func TestVehicleAgeJSON(t *testing.T) {
	t.Run("known age encodes as a number", func(t *testing.T) {
		b, err := json.Marshal(AgeYears(7))
		require.NoError(t, err)
		assert.JSONEq(t, `7`, string(b))
	})

	t.Run("unknown age encodes as the sentinel", func(t *testing.T) {
		b, err := json.Marshal(AgeUnknown())
		require.NoError(t, err)
		assert.JSONEq(t, `"N/A"`, string(b))
	})

	t.Run("decodes both shapes", func(t *testing.T) {
		var a VehicleAge
		require.NoError(t, json.Unmarshal([]byte(`12`), &a))
		years, ok := a.Years()
		assert.True(t, ok)
		assert.Equal(t, 12, years)

		require.NoError(t, json.Unmarshal([]byte(`"N/A"`), &a))
		_, ok = a.Years()
		assert.False(t, ok)
	})
}

func TestNewVehicleRecord(t *testing.T) {
	r := NewVehicleRecord()

	b, err := json.Marshal(r)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(b, &decoded))

	assert.Len(t, decoded, 21)
	for key, value := range decoded {
		assert.Equal(t, NA, value, "field %s", key)
	}
	assert.Len(t, VehicleKeys(), 20)
}

func TestVehicleRecordSet(t *testing.T) {
	r := NewVehicleRecord()

	assert.True(t, r.Set("owner_name", "Asha Rao"))
	assert.False(t, r.Set("vehicle_age_years", "3"))
	assert.False(t, r.Set("unknown", "x"))
	assert.Equal(t, "Asha Rao", r.OwnerName)
}

func TestChallanRecordComplete(t *testing.T) {
	c := ChallanRecord{ChallanNumber: "DL/1/2024", Amount: "₹ 500", PaymentStatus: "Paid"}.Complete()

	assert.Equal(t, "500", c.Amount)
	assert.Equal(t, PaymentPaid, c.PaymentStatus)
	assert.Equal(t, NA, c.CourtName)
	for _, f := range c.Fields() {
		assert.NotEmpty(t, f.Value, f.Key)
	}
}

func TestNormalizePaymentStatus(t *testing.T) {
	cases := map[string]string{
		"PAID":          PaymentPaid,
		"paid online":   PaymentPaid,
		"Unpaid":        PaymentUnpaid,
		"not paid":      PaymentUnpaid,
		"Pending":       PaymentPending,
		"sent to court": PaymentPending,
		"":              NA,
		"???":           NA,
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizePaymentStatus(in), in)
	}
}
