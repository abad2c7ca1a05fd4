package booking

import (
	"fmt"

	"strikersyard/models"
	"strikersyard/utils"

	"github.com/shopspring/decimal"
)

// PriceRun computes the total payable for a contiguous slot run. Each slot is
// charged at the service's evening rate when its start time is at or past the
// evening cutoff (minutes from midnight), otherwise at the normal rate. No
// proration within a slot, no rounding of intermediate sums.
func PriceRun(slots []models.TimeSlot, svc models.Service, eveningStart int) (decimal.Decimal, error) {
	normal, err := utils.D128ToDecimal(svc.PricePerHour)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("service %s has invalid price_per_hour: %w", svc.ID, err)
	}
	evening, err := utils.D128ToDecimal(svc.EveningPricing)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("service %s has invalid evening_pricing: %w", svc.ID, err)
	}

	total := decimal.Zero
	for _, slot := range slots {
		if slot.Start >= eveningStart {
			total = total.Add(evening)
		} else {
			total = total.Add(normal)
		}
	}
	return total, nil
}

// PartialAmount derives the upfront payable for a partial payment. This is
// the one place a payable sub-amount is quantized to 2 decimal places.
func PartialAmount(total, fraction decimal.Decimal) decimal.Decimal {
	return total.Mul(fraction).Round(2)
}

// ToMinorUnits converts a rupee amount into paise for the gateway.
func ToMinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).IntPart()
}
