package metrics

import "github.com/AngelCh415/FUNNEL_GO/internal/models"

func safeDiv(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}

// P1ToUpP1Rate is the share of P1 bills followed by an UP P1 bill, in percent.
func P1ToUpP1Rate(s models.PeriodSummary) float64 {
	return safeDiv(float64(s.UpP1Bills), float64(s.P1Bills)) * 100
}

// P2ConversionRate is UP P2 bills per P2 lead, in percent.
func P2ConversionRate(s models.PeriodSummary) float64 {
	return safeDiv(float64(s.UpP2Bills), float64(s.P2Leads)) * 100
}

func ROAS(revenue, spend float64) float64 { return safeDiv(revenue, spend) }

func CostPerPurchase(spend, purchases float64) float64 { return safeDiv(spend, purchases) }
