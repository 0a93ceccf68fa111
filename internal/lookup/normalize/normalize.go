// Package normalize maps heterogeneous source payloads onto the canonical
// record shapes. Nothing here performs I/O.
package normalize

import (
	"strconv"
	"strings"
	"time"

	"vehicleinfo/internal/lookup/models"
)

// KeyMap maps a canonical field key to the key a source uses for it.
type KeyMap map[string]string

// VahanVehicleKeys is the field naming of the VAHAN registration service.
var VahanVehicleKeys = KeyMap{
	"registration_number": "regn_no",
	"owner_name":          "owner_name",
	"father_name":         "f_name",
	"address":             "c_add",
	"pincode":             "p_code",
	"mobile":              "mobile",
	"vehicle_class":       "vh_class",
	"maker":               "maker_desc",
	"model":               "maker_model",
	"fuel_type":           "fuel_type",
	"registration_date":   "reg_dt",
	"registration_upto":   "reg_upto",
	"fitness_upto":        "fit_upto",
	"insurance_upto":      "ins_upto",
	"puc_upto":            "puc_upto",
	"vehicle_color":       "colr_desc",
	"engine_number":       "eng_no",
	"chassis_number":      "chasi_no",
	"rc_status":           "rc_status",
}

// CanonicalVehicleKeys maps every field to itself, for sources that already
// speak the canonical schema.
var CanonicalVehicleKeys = identity(models.VehicleKeys())

// CamelChallanKeys is the camelCase naming used by the eChallan service and
// the third-party challan APIs.
var CamelChallanKeys = KeyMap{
	"challan_number":  "challanNo",
	"issue_date":      "issueDate",
	"offence_date":    "offenceDate",
	"offence_time":    "offenceTime",
	"offence_place":   "offencePlace",
	"offence_section": "offenceSection",
	"offence_desc":    "offenceDesc",
	"amount":          "amount",
	"payment_status":  "paymentStatus",
	"payment_date":    "paymentDate",
	"court_name":      "courtName",
	"court_address":   "courtAddress",
}

// Vehicle maps obj into a complete record. The boolean reports whether any
// field was recovered; a record with nothing recovered is a structural miss.
// The age is derived from the registration date relative to now.
func Vehicle(obj map[string]any, keys KeyMap, now time.Time) (models.VehicleRecord, bool) {
	rec := models.NewVehicleRecord()
	found := false
	for canonical, sourceKey := range keys {
		v := getString(obj, sourceKey)
		if v == "" || v == models.NA {
			continue
		}
		if rec.Set(canonical, v) {
			found = true
		}
	}
	rec.VehicleAgeYears = models.ComputeVehicleAge(now, rec.RegistrationDate)
	return rec, found
}

// Challan maps obj into a complete challan record.
func Challan(obj map[string]any, keys KeyMap) models.ChallanRecord {
	var c models.ChallanRecord
	c.ChallanNumber = getString(obj, keys["challan_number"])
	c.IssueDate = getString(obj, keys["issue_date"])
	c.OffenceDate = getString(obj, keys["offence_date"])
	c.OffenceTime = getString(obj, keys["offence_time"])
	c.OffencePlace = getString(obj, keys["offence_place"])
	c.OffenceSection = getString(obj, keys["offence_section"])
	c.OffenceDesc = getString(obj, keys["offence_desc"])
	c.Amount = getString(obj, keys["amount"])
	c.PaymentStatus = getString(obj, keys["payment_status"])
	c.PaymentDate = getString(obj, keys["payment_date"])
	c.CourtName = getString(obj, keys["court_name"])
	c.CourtAddress = getString(obj, keys["court_address"])
	return c.Complete()
}

// Challans maps every object element of list, skipping anything else.
func Challans(list []any, keys KeyMap) []models.ChallanRecord {
	out := make([]models.ChallanRecord, 0, len(list))
	for _, item := range list {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, Challan(obj, keys))
	}
	return out
}

// BlacklistFromFlag maps the VAHAN single-letter flag: "N" is clean, anything
// else, including a missing flag, is treated as blacklisted.
func BlacklistFromFlag(flag string) string {
	if strings.EqualFold(strings.TrimSpace(flag), "N") {
		return "NO"
	}
	return "YES"
}

// Ordered keyword rules for label:value scraping. The first keyword found in
// a text decides its field.
var labelRules = []struct {
	keyword string
	field   string
}{
	{"owner", "owner_name"},
	{"father", "father_name"},
	{"address", "address"},
	{"model", "model"},
	{"maker", "maker"},
}

// Labelled extracts canonical fields from "Label: value" texts. Later texts
// overwrite earlier ones, so inner elements win over their containers.
func Labelled(texts []string) map[string]string {
	out := map[string]string{}
	for _, text := range texts {
		label, value, ok := strings.Cut(text, ":")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		lower := strings.ToLower(label)
		for _, rule := range labelRules {
			if strings.Contains(lower, rule.keyword) {
				out[rule.field] = value
				break
			}
		}
	}
	return out
}

// ChallanFromCells maps a scraped table row positionally. Rows with fewer
// than five cells are not challans.
func ChallanFromCells(cells []string) (models.ChallanRecord, bool) {
	if len(cells) < 5 {
		return models.ChallanRecord{}, false
	}
	at := func(i int) string {
		if i < len(cells) {
			return strings.TrimSpace(cells[i])
		}
		return ""
	}
	c := models.ChallanRecord{
		ChallanNumber: at(0),
		IssueDate:     at(1),
		OffenceDate:   at(2),
		OffencePlace:  at(3),
		Amount:        at(4),
		OffenceDesc:   at(5),
		PaymentStatus: at(6),
	}
	return c.Complete(), true
}

func identity(keys []string) KeyMap {
	m := make(KeyMap, len(keys))
	for _, k := range keys {
		m[k] = k
	}
	return m
}

// getString returns obj[key] as trimmed text. Numbers and booleans are
// formatted; nested values and nulls are treated as absent.
func getString(obj map[string]any, key string) string {
	if key == "" {
		return ""
	}
	switch v := obj[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}
