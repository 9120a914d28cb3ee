package utils

import "math"

// RoundWithTwoDecimalPlace rounds monetary values to DECIMAL(10,2) precision
func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// RoundWithOneDecimalPlace rounds engine displacement to DECIMAL(3,1) precision
func RoundWithOneDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*10) / 10
}
