package synthetic

import (
	"context"
	"fmt"

	"vehicleinfo/internal/lookup/models"
	"vehicleinfo/internal/lookup/providers"
)

const maxChallans = 5

var paymentStatuses = []string{models.PaymentPaid, models.PaymentUnpaid, models.PaymentPending}

// ChallanGenerator produces zero to five challans per plate.
type ChallanGenerator struct {
	rnd *Random
}

func NewChallanGenerator(rnd *Random) *ChallanGenerator {
	return &ChallanGenerator{rnd: rnd}
}

func (g *ChallanGenerator) ID() string { return providers.IDChallanSynthetic }

func (g *ChallanGenerator) Tier() providers.Tier { return providers.TierSynthetic }

// Generate returns a non-nil slice; an empty one means a clean record.
func (g *ChallanGenerator) Generate(ctx context.Context, _ models.Plate) ([]models.ChallanRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r := g.rnd

	n := r.Between(0, maxChallans)
	out := make([]models.ChallanRecord, 0, n)
	for range n {
		out = append(out, g.challan())
	}
	return out, nil
}

func (g *ChallanGenerator) challan() models.ChallanRecord {
	r := g.rnd

	off := pick(r, offences)
	year := r.Between(2020, 2023)
	month := r.Between(1, 12)
	day := r.Between(1, 28)
	issued := formatDate(day, month, year)
	hour := r.Between(8, 20)
	minute := r.Between(0, 59)
	status := pick(r, paymentStatuses)

	c := models.ChallanRecord{
		ChallanNumber:  fmt.Sprintf("DL/%d/%d", r.Between(1000000, 9999999), year),
		IssueDate:      issued,
		OffenceDate:    issued,
		OffenceTime:    fmt.Sprintf("%02d:%02d", hour, minute),
		OffencePlace:   pick(r, places),
		OffenceSection: off.section,
		OffenceDesc:    off.desc,
		Amount:         off.amount,
		PaymentStatus:  status,
		PaymentDate:    models.NA,
		CourtName:      models.NA,
		CourtAddress:   models.NA,
	}

	switch status {
	case models.PaymentPaid:
		payMonth, payYear := month, year
		if r.Coin() {
			payMonth, payYear = addMonths(month, year, 1)
		}
		c.PaymentDate = formatDate(day, payMonth, payYear)
	case models.PaymentUnpaid:
		c.CourtName = courtName
		c.CourtAddress = courtAddress
	}
	return c
}
