package report

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"vehicleinfo/internal/lookup/models"
)

// ChallanColumns are the columns of the terminal challan table.
var ChallanColumns = []string{"Challan No", "Issue Date", "Offence Date", "Place", "Section", "Description", "Amount", "Status"}

// Grid writes rows as a bordered table with a double rule under the header.
func Grid(w io.Writer, headers []string, rows [][]string) error {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range rows {
		for i := range headers {
			if i < len(row) {
				widths[i] = max(widths[i], utf8.RuneCountInString(row[i]))
			}
		}
	}

	var b strings.Builder
	rule := func(fill string) {
		b.WriteByte('+')
		for _, wd := range widths {
			b.WriteString(strings.Repeat(fill, wd+2))
			b.WriteByte('+')
		}
		b.WriteByte('\n')
	}
	line := func(cells []string) {
		b.WriteByte('|')
		for i, wd := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			b.WriteString(" " + cell + strings.Repeat(" ", wd-utf8.RuneCountInString(cell)) + " |")
		}
		b.WriteByte('\n')
	}

	rule("-")
	line(headers)
	rule("=")
	for _, row := range rows {
		line(row)
		rule("-")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// VehicleTable writes the Field/Value table for a vehicle record.
func VehicleTable(w io.Writer, v models.VehicleRecord) error {
	fields := v.Fields()
	rows := make([][]string, 0, len(fields))
	for _, f := range fields {
		rows = append(rows, []string{f.Label, f.Value})
	}
	return Grid(w, []string{"Field", "Value"}, rows)
}

// ChallanTable writes one row per challan. An empty list writes a single
// notice line instead of a table.
func ChallanTable(w io.Writer, challans []models.ChallanRecord) error {
	if len(challans) == 0 {
		_, err := fmt.Fprintln(w, "No challans found for this vehicle.")
		return err
	}
	rows := make([][]string, 0, len(challans))
	for _, c := range challans {
		rows = append(rows, []string{
			c.ChallanNumber,
			c.IssueDate,
			c.OffenceDate,
			c.OffencePlace,
			c.OffenceSection,
			c.OffenceDesc,
			Amount(c.Amount),
			c.PaymentStatus,
		})
	}
	return Grid(w, ChallanColumns, rows)
}
