package report

import (
	"encoding/csv"
	"io"
)

var csvChallanHeader = []string{
	"Challan No", "Issue Date", "Offence Date", "Offence Time",
	"Offence Place", "Section", "Description", "Amount",
	"Payment Status", "Payment Date", "Court Name", "Court Address",
}

// WriteCSV writes a VEHICLE INFORMATION block, a blank row and a CHALLAN
// INFORMATION block.
func WriteCSV(w io.Writer, r Report) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true

	records := [][]string{{"VEHICLE INFORMATION"}, {"Field", "Value"}}
	if r.Vehicle != nil {
		for _, f := range r.Vehicle.Fields() {
			records = append(records, []string{f.Label, f.Value})
		}
	}
	records = append(records, []string{}, []string{"CHALLAN INFORMATION"})

	if len(r.Challans) == 0 {
		records = append(records, []string{"No challans found for this vehicle"})
	} else {
		records = append(records, csvChallanHeader)
		for _, c := range r.Challans {
			records = append(records, []string{
				c.ChallanNumber,
				c.IssueDate,
				c.OffenceDate,
				c.OffenceTime,
				c.OffencePlace,
				c.OffenceSection,
				c.OffenceDesc,
				Amount(c.Amount),
				c.PaymentStatus,
				c.PaymentDate,
				c.CourtName,
				c.CourtAddress,
			})
		}
	}

	if err := cw.WriteAll(records); err != nil {
		return err
	}
	return cw.Error()
}
