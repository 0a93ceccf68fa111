package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vehicleinfo/internal/lookup/models"
)

var generatedOn = time.Date(2024, time.March, 5, 14, 7, 9, 0, time.UTC)

func sampleReport() Report {
	v := models.NewVehicleRecord()
	v.RegistrationNumber = "DL01AB1234"
	v.OwnerName = "Rahul Kumar"
	v.VehicleAgeYears = models.AgeYears(6)

	c := models.NewChallanRecord()
	c.ChallanNumber = "DL/1234567/2022"
	c.OffenceDesc = "Red light jumping"
	c.Amount = "1000"
	c.PaymentStatus = models.PaymentUnpaid

	return Report{Vehicle: &v, Challans: []models.ChallanRecord{c}, GeneratedOn: generatedOn}
}

func TestFilename(t *testing.T) {
	r := sampleReport()
	assert.Equal(t, "DL01AB1234_20240305_140709.csv", Filename(r, FormatCSV))
	assert.Equal(t, "DL01AB1234_20240305_140709.txt", Filename(r, FormatText))

	r.Vehicle.RegistrationNumber = "DL 01 AB 1234"
	assert.Equal(t, "DL_01_AB_1234_20240305_140709.json", Filename(r, FormatJSON))

	r.Vehicle = nil
	assert.Equal(t, "UNKNOWN_20240305_140709.pdf", Filename(r, FormatPDF))
}

func TestParseFormat(t *testing.T) {
	for raw, want := range map[string]Format{"1": FormatText, "txt": FormatText, "CSV": FormatCSV, "3": FormatJSON, " pdf ": FormatPDF} {
		got, err := ParseFormat(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}
	_, err := ParseFormat("5")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, sampleReport()))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, strings.Repeat("=", 80)+"\nVEHICLE INFORMATION REPORT\n"))
	assert.Contains(t, out, "Generated on: 05-03-2024 14:07:09")
	assert.Contains(t, out, "Vehicle Registration: DL01AB1234")
	assert.Contains(t, out, "VEHICLE DETAILS:\n"+strings.Repeat("-", 40))
	assert.Contains(t, out, "Owner Name: Rahul Kumar\n")
	assert.Contains(t, out, "Vehicle Age Years: 6\n")
	assert.Contains(t, out, "Challan #1:\n  Challan Number: DL/1234567/2022")
	assert.Contains(t, out, "  Amount: ₹1000\n")
	assert.Contains(t, out, "  Court Name: N/A\n")
	assert.Contains(t, out, "END OF REPORT")

	t.Run("no challans", func(t *testing.T) {
		r := sampleReport()
		r.Challans = nil
		buf.Reset()
		require.NoError(t, WriteText(&buf, r))
		assert.Contains(t, buf.String(), "No challans found for this vehicle.")
	})
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleReport()))

	r := csv.NewReader(&buf)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	require.NoError(t, err)

	assert.Equal(t, []string{"VEHICLE INFORMATION"}, records[0])
	assert.Equal(t, []string{"Field", "Value"}, records[1])
	assert.Equal(t, []string{"Registration Number", "DL01AB1234"}, records[2])

	// csv.Reader skips the blank separator row.
	vehicleRows := len(models.NewVehicleRecord().Fields())
	assert.Equal(t, []string{"CHALLAN INFORMATION"}, records[2+vehicleRows])
	assert.Equal(t, csvChallanHeader, records[3+vehicleRows])
	challan := records[4+vehicleRows]
	assert.Equal(t, "DL/1234567/2022", challan[0])
	assert.Equal(t, "₹1000", challan[7])
	assert.Equal(t, models.PaymentUnpaid, challan[8])
}

func TestWriteCSVBlankRowSeparatesBlocks(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, Report{GeneratedOn: generatedOn}))

	assert.Equal(t,
		"VEHICLE INFORMATION\r\nField,Value\r\n\r\nCHALLAN INFORMATION\r\nNo challans found for this vehicle\r\n",
		buf.String())
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleReport()))

	var doc struct {
		VehicleInfo map[string]any   `json:"vehicle_info"`
		ChallanData []map[string]any `json:"challan_data"`
		GeneratedOn string           `json:"generated_on"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, "05-03-2024 14:07:09", doc.GeneratedOn)
	assert.Equal(t, "Rahul Kumar", doc.VehicleInfo["owner_name"])
	assert.EqualValues(t, 6, doc.VehicleInfo["vehicle_age_years"])
	require.Len(t, doc.ChallanData, 1)
	assert.Equal(t, "₹1000", doc.ChallanData[0]["amount"])
	assert.Equal(t, models.NA, doc.ChallanData[0]["court_name"])

	t.Run("challan-only report", func(t *testing.T) {
		buf.Reset()
		require.NoError(t, WriteJSON(&buf, Report{GeneratedOn: generatedOn}))
		assert.Contains(t, buf.String(), `"vehicle_info": {}`)
		assert.Contains(t, buf.String(), `"challan_data": []`)
	})
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, sampleReport()))

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	assert.Greater(t, buf.Len(), 1000)
}

func TestGrid(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Grid(&buf, []string{"Field", "Value"}, [][]string{{"Owner Name", "Rahul"}, {"Amount", "₹500"}}))

	want := strings.Join([]string{
		"+------------+-------+",
		"| Field      | Value |",
		"+============+=======+",
		"| Owner Name | Rahul |",
		"+------------+-------+",
		"| Amount     | ₹500  |",
		"+------------+-------+",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestChallanTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ChallanTable(&buf, nil))
	assert.Equal(t, "No challans found for this vehicle.\n", buf.String())

	buf.Reset()
	require.NoError(t, ChallanTable(&buf, sampleReport().Challans))
	assert.Contains(t, buf.String(), "| Challan No ")
	assert.Contains(t, buf.String(), "₹1000")
}

func TestSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")

	path, err := Save(dir, FormatJSON, sampleReport())

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "DL01AB1234_20240305_140709.json"), path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"vehicle_info"`)
}
