package normalize

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vehicleinfo/internal/lookup/models"
)

var fixedNow = time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

func decode(t *testing.T, raw string) map[string]any {
	t.Helper()
	var obj map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &obj))
	return obj
}

func TestVehicle(t *testing.T) {
	t.Run("maps vahan keys and derives age", func(t *testing.T) {
		obj := decode(t, `{
			"regn_no": "MH12AB1234",
			"owner_name": "Rahul Sharma",
			"f_name": "Anil Sharma",
			"reg_dt": "15-03-2018",
			"p_code": 400050,
			"rc_status": "ACTIVE"
		}`)

		rec, ok := Vehicle(obj, VahanVehicleKeys, fixedNow)

		require.True(t, ok)
		assert.Equal(t, "MH12AB1234", rec.RegistrationNumber)
		assert.Equal(t, "Anil Sharma", rec.FatherName)
		assert.Equal(t, "400050", rec.Pincode)
		assert.Equal(t, "6", rec.VehicleAgeYears.String())
		assert.Equal(t, models.NA, rec.ChassisNumber)
	})

	t.Run("empty object is a structural miss", func(t *testing.T) {
		rec, ok := Vehicle(map[string]any{"unrelated": "x"}, CanonicalVehicleKeys, fixedNow)

		assert.False(t, ok)
		for _, f := range rec.Fields() {
			assert.Equal(t, models.NA, f.Value, f.Key)
		}
	})

	t.Run("sentinel values do not count as recovered", func(t *testing.T) {
		_, ok := Vehicle(map[string]any{"owner_name": "N/A", "maker": nil}, CanonicalVehicleKeys, fixedNow)
		assert.False(t, ok)
	})
}

func TestChallans(t *testing.T) {
	obj := decode(t, `{"challanList": [
		{"challanNo": "DL/1234567/2022", "amount": 500, "paymentStatus": "Unpaid", "courtName": "Tis Hazari"},
		"noise",
		{"challanNo": "DL/7654321/2023", "paymentStatus": "paid"}
	]}`)

	list := Challans(obj["challanList"].([]any), CamelChallanKeys)

	require.Len(t, list, 2)
	assert.Equal(t, "500", list[0].Amount)
	assert.Equal(t, models.PaymentUnpaid, list[0].PaymentStatus)
	assert.Equal(t, "Tis Hazari", list[0].CourtName)
	assert.Equal(t, models.PaymentPaid, list[1].PaymentStatus)
	assert.Equal(t, models.NA, list[1].OffenceTime)
}

func TestBlacklistFromFlag(t *testing.T) {
	assert.Equal(t, "NO", BlacklistFromFlag("N"))
	assert.Equal(t, "NO", BlacklistFromFlag(" n "))
	assert.Equal(t, "YES", BlacklistFromFlag("Y"))
	assert.Equal(t, "YES", BlacklistFromFlag(""))
}

func TestLabelled(t *testing.T) {
	got := Labelled([]string{
		"Owner Name: Vikram Singh\nFather Name: Ramesh Singh",
		"Owner Name: Vikram Singh",
		"Father's Name: Ramesh Singh",
		"Address: 12, MG Road, Bangalore",
		"Maker / Model: Honda City",
		"Maker: Honda",
		"Colour: Red",
		"Owner:",
		"no colon here",
	})

	assert.Equal(t, map[string]string{
		"owner_name":  "Vikram Singh",
		"father_name": "Ramesh Singh",
		"address":     "12, MG Road, Bangalore",
		"model":       "Honda City",
		"maker":       "Honda",
	}, got)
}

func TestChallanFromCells(t *testing.T) {
	t.Run("maps columns positionally", func(t *testing.T) {
		c, ok := ChallanFromCells([]string{"DL/1/2023", "01-02-2023", "01-02-2023", "Ring Road", "₹500", "Red light", "Pending"})

		require.True(t, ok)
		assert.Equal(t, "DL/1/2023", c.ChallanNumber)
		assert.Equal(t, "Ring Road", c.OffencePlace)
		assert.Equal(t, "500", c.Amount)
		assert.Equal(t, "Red light", c.OffenceDesc)
		assert.Equal(t, models.PaymentPending, c.PaymentStatus)
		assert.Equal(t, models.NA, c.OffenceSection)
	})

	t.Run("five cells leave description and status unknown", func(t *testing.T) {
		c, ok := ChallanFromCells([]string{"A", "B", "C", "D", "100"})

		require.True(t, ok)
		assert.Equal(t, models.NA, c.OffenceDesc)
		assert.Equal(t, models.NA, c.PaymentStatus)
	})

	t.Run("short rows are rejected", func(t *testing.T) {
		_, ok := ChallanFromCells([]string{"A", "B", "C", "D"})
		assert.False(t, ok)
	})
}
