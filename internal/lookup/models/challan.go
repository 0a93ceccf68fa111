package models

import "strings"

// PaymentStatus values a challan may carry.
const (
	PaymentPaid    = "PAID"
	PaymentUnpaid  = "UNPAID"
	PaymentPending = "PENDING"
)

// ChallanRecord is the canonical traffic-violation record. Every field holds
// NA when the source did not supply it.
type ChallanRecord struct {
	ChallanNumber  string `json:"challan_number"`
	IssueDate      string `json:"issue_date"`
	OffenceDate    string `json:"offence_date"`
	OffenceTime    string `json:"offence_time"`
	OffencePlace   string `json:"offence_place"`
	OffenceSection string `json:"offence_section"`
	OffenceDesc    string `json:"offence_desc"`
	Amount         string `json:"amount"`
	PaymentStatus  string `json:"payment_status"`
	PaymentDate    string `json:"payment_date"`
	CourtName      string `json:"court_name"`
	CourtAddress   string `json:"court_address"`
}

// NewChallanRecord returns a record with every field set to NA.
func NewChallanRecord() ChallanRecord {
	var c ChallanRecord
	for _, p := range c.pointers() {
		*p = NA
	}
	return c
}

// Fields lists the record's values in canonical order.
func (c ChallanRecord) Fields() []Field {
	return []Field{
		{"challan_number", "Challan Number", c.ChallanNumber},
		{"issue_date", "Issue Date", c.IssueDate},
		{"offence_date", "Offence Date", c.OffenceDate},
		{"offence_time", "Offence Time", c.OffenceTime},
		{"offence_place", "Offence Place", c.OffencePlace},
		{"offence_section", "Offence Section", c.OffenceSection},
		{"offence_desc", "Offence Description", c.OffenceDesc},
		{"amount", "Amount", c.Amount},
		{"payment_status", "Payment Status", c.PaymentStatus},
		{"payment_date", "Payment Date", c.PaymentDate},
		{"court_name", "Court Name", c.CourtName},
		{"court_address", "Court Address", c.CourtAddress},
	}
}

// Complete replaces empty fields with NA and folds the payment status into
// the closed set.
func (c ChallanRecord) Complete() ChallanRecord {
	for _, p := range c.pointers() {
		if *p == "" {
			*p = NA
		}
	}
	c.PaymentStatus = NormalizePaymentStatus(c.PaymentStatus)
	c.Amount = NormalizeAmount(c.Amount)
	return c
}

func (c *ChallanRecord) pointers() []*string {
	return []*string{
		&c.ChallanNumber, &c.IssueDate, &c.OffenceDate, &c.OffenceTime, &c.OffencePlace,
		&c.OffenceSection, &c.OffenceDesc, &c.Amount, &c.PaymentStatus, &c.PaymentDate,
		&c.CourtName, &c.CourtAddress,
	}
}

// NormalizePaymentStatus maps free-form source text onto PAID, UNPAID,
// PENDING or NA.
func NormalizePaymentStatus(raw string) string {
	s := strings.ToUpper(strings.TrimSpace(raw))
	switch {
	case s == "" || s == NA:
		return NA
	case strings.Contains(s, "UNPAID") || strings.Contains(s, "NOT PAID") || s == "DUE":
		return PaymentUnpaid
	case strings.Contains(s, "PAID") || s == "DISPOSED" || s == "SETTLED":
		return PaymentPaid
	case strings.Contains(s, "PENDING") || strings.Contains(s, "COURT"):
		return PaymentPending
	default:
		return NA
	}
}

// NormalizeAmount strips currency markers so exports can add their own.
func NormalizeAmount(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "₹")
	s = strings.TrimPrefix(s, "Rs.")
	s = strings.TrimPrefix(s, "Rs")
	s = strings.TrimPrefix(s, "INR")
	s = strings.TrimSpace(s)
	if s == "" {
		return NA
	}
	return s
}
