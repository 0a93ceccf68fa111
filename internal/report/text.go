package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// WriteText writes the plain-text report.
func WriteText(w io.Writer, r Report) error {
	bw := bufio.NewWriter(w)
	heavy := strings.Repeat("=", 80)
	light := strings.Repeat("-", 40)

	fmt.Fprintln(bw, heavy)
	fmt.Fprintln(bw, "VEHICLE INFORMATION REPORT")
	fmt.Fprintln(bw, heavy)
	fmt.Fprintf(bw, "Generated on: %s\n", r.GeneratedOn.Format(timestampLayout))
	fmt.Fprintf(bw, "Vehicle Registration: %s\n\n", r.RegistrationNumber())

	fmt.Fprintln(bw, "VEHICLE DETAILS:")
	fmt.Fprintln(bw, light)
	if r.Vehicle == nil {
		fmt.Fprintln(bw, "No vehicle details requested.")
	} else {
		for _, f := range r.Vehicle.Fields() {
			fmt.Fprintf(bw, "%s: %s\n", f.Label, f.Value)
		}
	}
	fmt.Fprintln(bw)

	fmt.Fprintln(bw, "CHALLAN DETAILS:")
	fmt.Fprintln(bw, light)
	if len(r.Challans) == 0 {
		fmt.Fprintln(bw, "No challans found for this vehicle.")
	}
	for i, c := range r.Challans {
		fmt.Fprintf(bw, "\nChallan #%d:\n", i+1)
		for _, f := range c.Fields() {
			value := f.Value
			if f.Key == "amount" {
				value = Amount(value)
			}
			fmt.Fprintf(bw, "  %s: %s\n", f.Label, value)
		}
	}

	fmt.Fprintln(bw)
	fmt.Fprintln(bw, heavy)
	fmt.Fprintln(bw, "END OF REPORT")
	fmt.Fprintln(bw, heavy)
	return bw.Flush()
}
