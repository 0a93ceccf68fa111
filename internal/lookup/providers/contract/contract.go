// Package contract holds reusable checks every source adapter must pass:
// canonical completeness of what it returns and taxonomy conformance of how
// it fails.
package contract

import (
	"context"
	"fmt"
	"testing"

	"vehicleinfo/internal/lookup/models"
	"vehicleinfo/internal/lookup/providers"
)

// Source is the lookup surface shared by vehicle and challan adapters.
type Source[T any] interface {
	ID() string
	Tier() providers.Tier
	Lookup(ctx context.Context, plate models.Plate) (T, error)
}

// ContractTest defines a successful lookup case
type ContractTest[T any] struct {
	Name         string
	Source       Source[T]
	Plate        models.Plate
	ValidateFunc func(result T) error
}

// ContractSuite is a collection of contract tests for a source
type ContractSuite[T any] struct {
	SourceID string
	Tier     providers.Tier
	// Canonical checks the always-present field invariant of a result
	Canonical func(result T) error
	Tests     []ContractTest[T]
}

// Run executes all contract tests in the suite
func (s *ContractSuite[T]) Run(t *testing.T) {
	for _, test := range s.Tests {
		t.Run(test.Name, func(t *testing.T) {
			result, err := test.Source.Lookup(context.Background(), test.Plate)
			if err != nil {
				t.Fatalf("source lookup failed: %v", err)
			}

			if test.Source.ID() != s.SourceID {
				t.Errorf("expected source ID %s, got %s", s.SourceID, test.Source.ID())
			}
			if test.Source.Tier() != s.Tier {
				t.Errorf("expected tier %s, got %s", s.Tier, test.Source.Tier())
			}

			if s.Canonical != nil {
				if err := s.Canonical(result); err != nil {
					t.Errorf("canonical invariant violated: %v", err)
				}
			}

			if test.ValidateFunc != nil {
				if err := test.ValidateFunc(result); err != nil {
					t.Errorf("custom validation failed: %v", err)
				}
			}
		})
	}
}

// ErrorContractTest validates that source errors follow the taxonomy
type ErrorContractTest[T any] struct {
	Name          string
	Source        Source[T]
	Plate         models.Plate
	ExpectedError providers.ErrorCategory
	ExpectedRetry bool
}

// Run executes an error contract test
func (ect *ErrorContractTest[T]) Run(t *testing.T) {
	t.Run(ect.Name, func(t *testing.T) {
		_, err := ect.Source.Lookup(context.Background(), ect.Plate)
		if err == nil {
			t.Fatal("expected error but got none")
		}

		category := providers.GetCategory(err)
		if category != ect.ExpectedError {
			t.Errorf("expected error category %s, got %s (%v)", ect.ExpectedError, category, err)
		}

		isRetryable := providers.IsRetryable(err)
		if isRetryable != ect.ExpectedRetry {
			t.Errorf("expected retryable=%v, got %v", ect.ExpectedRetry, isRetryable)
		}
	})
}

// CompleteVehicle checks every canonical vehicle field is populated.
func CompleteVehicle(r models.VehicleRecord) error {
	for _, f := range r.Fields() {
		if f.Value == "" {
			return fmt.Errorf("field %s is empty", f.Key)
		}
	}
	return nil
}

// CompleteChallans checks the list is non-nil and each element is populated
// with a payment status from the closed set.
func CompleteChallans(list []models.ChallanRecord) error {
	if list == nil {
		return fmt.Errorf("nil challan list")
	}
	for i, c := range list {
		for _, f := range c.Fields() {
			if f.Value == "" {
				return fmt.Errorf("challan %d: field %s is empty", i, f.Key)
			}
		}
		switch c.PaymentStatus {
		case models.PaymentPaid, models.PaymentUnpaid, models.PaymentPending, models.NA:
		default:
			return fmt.Errorf("challan %d: payment status %q outside the closed set", i, c.PaymentStatus)
		}
	}
	return nil
}
