package calculator

import "math"

type EMIResult struct {
	MonthlyEMI        float64 `json:"monthlyEMI"`
	TotalAmountPaid   float64 `json:"totalAmountPaid"`
	TotalInterestPaid float64 `json:"totalInterestPaid"`
	LoanTermMonths    int     `json:"loanTermMonths"`
}

// EMI computes the equated monthly installment for a loan of amount at an
// annual percentage rate over the given number of years.
func EMI(amount, rate float64, years int) (EMIResult, error) {
	if !finite(amount) || amount <= 0 {
		return EMIResult{}, invalid("amount", "must be greater than 0")
	}
	if !finite(rate) || rate < 0 {
		return EMIResult{}, invalid("rate", "must not be negative")
	}
	if years <= 0 {
		return EMIResult{}, invalid("years", "must be greater than 0")
	}

	months := years * 12
	monthlyRate := rate / 12 / 100

	var emi float64
	if monthlyRate == 0 {
		emi = amount / float64(months)
	} else {
		growth := math.Pow(1+monthlyRate, float64(months))
		emi = amount * monthlyRate * growth / (growth - 1)
	}
	if !finite(emi) {
		return EMIResult{}, invalid("rate", "and term overflow the installment")
	}

	total := emi * float64(months)
	return EMIResult{
		MonthlyEMI:        round2(emi),
		TotalAmountPaid:   round2(total),
		TotalInterestPaid: round2(total - amount),
		LoanTermMonths:    months,
	}, nil
}
