// Package report renders resolved lookups for people: grid tables for the
// terminal and text, CSV, JSON and PDF files.
package report

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"vehicleinfo/internal/lookup/models"
)

// Rupee prefixes amounts in every textual format.
const Rupee = "₹"

const (
	timestampLayout = "02-01-2006 15:04:05"
	filenameLayout  = "20060102_150405"
)

var ErrUnknownFormat = errors.New("unknown report format")

// Format is a report file format.
type Format string

const (
	FormatText Format = "text"
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatPDF  Format = "pdf"
)

// Formats lists the formats in menu order.
var Formats = []Format{FormatText, FormatCSV, FormatJSON, FormatPDF}

// ParseFormat accepts a format name, its file extension or its 1-based menu
// number.
func ParseFormat(raw string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "text", "txt":
		return FormatText, nil
	case "2", "csv":
		return FormatCSV, nil
	case "3", "json":
		return FormatJSON, nil
	case "4", "pdf":
		return FormatPDF, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, raw)
}

func (f Format) Extension() string {
	if f == FormatText {
		return "txt"
	}
	return string(f)
}

func (f Format) ContentType() string {
	switch f {
	case FormatCSV:
		return "text/csv; charset=utf-8"
	case FormatJSON:
		return "application/json"
	case FormatPDF:
		return "application/pdf"
	default:
		return "text/plain; charset=utf-8"
	}
}

// Report is what gets written: an optional vehicle record and the challans
// found for it.
type Report struct {
	Vehicle     *models.VehicleRecord
	Challans    []models.ChallanRecord
	GeneratedOn time.Time
}

// RegistrationNumber is the vehicle's registration number, or "N/A" for
// challan-only reports.
func (r Report) RegistrationNumber() string {
	if r.Vehicle == nil || r.Vehicle.RegistrationNumber == "" {
		return models.NA
	}
	return r.Vehicle.RegistrationNumber
}

// Filename is the default file name: <REG>_<yyyymmdd_HHMMSS>.<ext>.
func Filename(r Report, f Format) string {
	reg := "UNKNOWN"
	if r.Vehicle != nil && r.Vehicle.RegistrationNumber != "" {
		reg = strings.ReplaceAll(r.Vehicle.RegistrationNumber, " ", "_")
	}
	return fmt.Sprintf("%s_%s.%s", reg, r.GeneratedOn.Format(filenameLayout), f.Extension())
}

// Write renders r to w in format f.
func Write(w io.Writer, f Format, r Report) error {
	switch f {
	case FormatText:
		return WriteText(w, r)
	case FormatCSV:
		return WriteCSV(w, r)
	case FormatJSON:
		return WriteJSON(w, r)
	case FormatPDF:
		return WritePDF(w, r)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// Save writes r under dir with the default file name and returns the path.
func Save(dir string, f Format, r Report) (path string, err error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}
	path = filepath.Join(dir, Filename(r, f))

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create report: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close report: %w", cerr)
		}
	}()

	if err := Write(file, f, r); err != nil {
		return "", fmt.Errorf("write %s report: %w", f, err)
	}
	return path, nil
}

// Amount renders a challan amount with the rupee prefix. Unknown amounts stay
// "N/A".
func Amount(amount string) string {
	if amount == "" || amount == models.NA {
		return models.NA
	}
	return Rupee + amount
}
