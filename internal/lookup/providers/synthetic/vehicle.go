// Package synthetic fabricates plausible canonical records when every real
// source has missed. Output shape is fixed; content comes from the injected
// Random.
package synthetic

import (
	"context"
	"fmt"
	"strings"

	"vehicleinfo/internal/lookup/models"
	"vehicleinfo/internal/lookup/providers"
	"vehicleinfo/pkg/requestcontext"
)

// VehicleGenerator produces registration records.
type VehicleGenerator struct {
	rnd *Random
}

func NewVehicleGenerator(rnd *Random) *VehicleGenerator {
	return &VehicleGenerator{rnd: rnd}
}

func (g *VehicleGenerator) ID() string { return providers.IDVehicleSynthetic }

func (g *VehicleGenerator) Tier() providers.Tier { return providers.TierSynthetic }

// Generate fabricates a record for plate. Only the plate's state code
// influences the content, through the address pool.
func (g *VehicleGenerator) Generate(ctx context.Context, plate models.Plate) (models.VehicleRecord, error) {
	if err := ctx.Err(); err != nil {
		return models.VehicleRecord{}, err
	}
	r := g.rnd

	first := pick(r, firstNames)
	last := pick(r, lastNames)
	mk := pick(r, makers)
	model := pick(r, mk.models)

	year := r.Between(2010, 2022)
	month := r.Between(1, 12)
	day := r.Between(1, 28)
	insYears := r.Between(1, 3)
	pucMonth, pucYear := addMonths(month, year, r.Between(6, 12))

	address := pick(r, AddressPool(plate.StateCode()))

	rec := models.VehicleRecord{
		RegistrationNumber: plate.String(),
		OwnerName:          first + " " + last,
		FatherName:         pick(r, firstNames) + " " + last,
		Address:            address,
		Pincode:            Pincode(address),
		Mobile:             fmt.Sprintf("9%d", r.Between(100000000, 999999999)),
		VehicleClass:       pick(r, vehicleClasses),
		Maker:              mk.name,
		Model:              model,
		FuelType:           pick(r, fuelTypes),
		RegistrationDate:   formatDate(day, month, year),
		RegistrationUpto:   formatDate(day, month, year+15),
		InsuranceUpto:      formatDate(day, month, year+insYears),
		PUCUpto:            formatDate(day, pucMonth, pucYear),
		VehicleColor:       pick(r, colours),
		EngineNumber:       fmt.Sprintf("%s%d", pick(r, enginePrefixes), r.Between(100000, 999999)),
		ChassisNumber:      fmt.Sprintf("%s%d", pick(r, chassisPrefixes), r.Between(100000000, 999999999)),
		BlacklistStatus:    "NO",
		RCStatus:           "ACTIVE",
	}
	rec.FitnessUpto = rec.RegistrationUpto
	rec.VehicleAgeYears = models.ComputeVehicleAge(requestcontext.Now(ctx), rec.RegistrationDate)

	return rec.Complete(), nil
}

// AddressPool returns the addresses for a state code, or the generic address.
func AddressPool(stateCode string) []string {
	if pool, ok := addressPools[strings.ToUpper(stateCode)]; ok {
		return pool
	}
	return []string{DefaultAddress}
}

// Pincode is the text after "- " in an address, or "000000".
func Pincode(address string) string {
	if _, pin, ok := strings.Cut(address, "- "); ok && pin != "" {
		return pin
	}
	return "000000"
}

// addMonths advances month by n, rolling into following years.
func addMonths(month, year, n int) (int, int) {
	total := month - 1 + n
	return total%12 + 1, year + total/12
}

func formatDate(day, month, year int) string {
	return fmt.Sprintf("%02d-%02d-%d", day, month, year)
}
