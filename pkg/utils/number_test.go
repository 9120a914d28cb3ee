package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	tests := []struct {
		name     string
		in       float64
		expected float64
	}{
		{name: "zero", in: 0, expected: 0},
		{name: "already two decimals", in: 45000.50, expected: 45000.50},
		{name: "rounds up", in: 95000.499, expected: 95000.50},
		{name: "rounds down", in: 12.341, expected: 12.34},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RoundWithTwoDecimalPlace(tt.in))
		})
	}
}

func TestRoundWithOneDecimalPlace(t *testing.T) {
	tests := []struct {
		name     string
		in       float64
		expected float64
	}{
		{name: "zero", in: 0, expected: 0},
		{name: "already one decimal", in: 2.0, expected: 2.0},
		{name: "rounds up", in: 2.96, expected: 3.0},
		{name: "rounds down", in: 1.64, expected: 1.6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RoundWithOneDecimalPlace(tt.in))
		})
	}
}
