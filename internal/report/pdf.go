package report

import (
	"fmt"
	"io"

	"github.com/phpdave11/gofpdf"

	"vehicleinfo/internal/lookup/models"
)

// The core PDF fonts have no rupee glyph.
const pdfRupee = "Rs. "

// WritePDF writes an A4 report with a vehicle section and one block per
// challan.
func WritePDF(w io.Writer, r Report) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Vehicle Information Report", true)
	pdf.SetAutoPageBreak(true, 15)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "VEHICLE INFORMATION REPORT")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, "Generated on: "+r.GeneratedOn.Format(timestampLayout))
	pdf.Ln(6)
	pdf.Cell(0, 6, "Vehicle Registration: "+tr(r.RegistrationNumber()))
	pdf.Ln(10)

	heading := func(title string) {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.Cell(0, 8, title)
		pdf.Ln(9)
	}
	row := func(label, value string) {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(50, 6, tr(label), "1", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 6, tr(value), "1", "L", false)
	}

	heading("VEHICLE DETAILS")
	if r.Vehicle == nil {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.Cell(0, 6, "No vehicle details requested.")
		pdf.Ln(6)
	} else {
		for _, f := range r.Vehicle.Fields() {
			row(f.Label, f.Value)
		}
	}
	pdf.Ln(6)

	heading("CHALLAN DETAILS")
	if len(r.Challans) == 0 {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.Cell(0, 6, "No challans found for this vehicle.")
		pdf.Ln(6)
	}
	for i, c := range r.Challans {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.Cell(0, 7, fmt.Sprintf("Challan #%d", i+1))
		pdf.Ln(7)
		for _, f := range c.Fields() {
			value := f.Value
			if f.Key == "amount" && value != models.NA {
				value = pdfRupee + value
			}
			row(f.Label, value)
		}
		pdf.Ln(4)
	}

	return pdf.Output(w)
}
