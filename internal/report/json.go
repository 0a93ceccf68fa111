package report

import (
	"encoding/json"
	"io"

	"vehicleinfo/internal/lookup/models"
)

type jsonReport struct {
	VehicleInfo any                    `json:"vehicle_info"`
	ChallanData []models.ChallanRecord `json:"challan_data"`
	GeneratedOn string                 `json:"generated_on"`
}

// WriteJSON writes {vehicle_info, challan_data, generated_on}. A challan-only
// report has an empty vehicle_info object.
func WriteJSON(w io.Writer, r Report) error {
	out := jsonReport{
		VehicleInfo: struct{}{},
		ChallanData: make([]models.ChallanRecord, 0, len(r.Challans)),
		GeneratedOn: r.GeneratedOn.Format(timestampLayout),
	}
	if r.Vehicle != nil {
		out.VehicleInfo = r.Vehicle
	}
	for _, c := range r.Challans {
		c.Amount = Amount(c.Amount)
		out.ChallanData = append(out.ChallanData, c)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	enc.SetEscapeHTML(false)
	return enc.Encode(out)
}
