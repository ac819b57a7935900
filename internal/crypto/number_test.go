package crypto

import (
	"math"
	"testing"
)

func TestFormatOAPSNumber(t *testing.T) {
	tests := []struct {
		literal  string
		expected string
	}{
		{"0", "0"},
		{"-0", "0"},
		{"0.0", "0"},
		{"0e5", "0"},
		{"7", "7"},
		{"-7", "-7"},
		{"1.0", "1"},
		{"1.10", "1.1"},
		{"10", "10"},
		{"1e1", "10"},
		{"1E+1", "10"},
		{"100e-2", "1"},
		{"0.001", "0.001"},
		{"1e-6", "0.000001"},
		{"1.5e-6", "0.0000015"},
		{"1e-7", "1e-7"},
		{"-1.25e-7", "-1.25e-7"},
		{"999999999999999999999", "999999999999999999999"},
		{"1e21", "1e+21"},
		{"1.5e21", "15e+20"},
		{"12.34e19", "123400000000000000000"},
		{"12.34e20", "1234e+18"},
		{"12e30", "12e+30"},
		{"9007199254740993", "9007199254740993"},
		{"1234567890123456789012345", "1234567890123456789012345"},
		{"-115792089237316195423570985008687907853269984665640564039457584007913129639935", "-115792089237316195423570985008687907853269984665640564039457584007913129639935"},
		{"1234567890123456789012345.000e2", "123456789012345678901234500"},
		{"0e1000000001", "0"},
		{"-0.0e-99999999999999999999", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.literal, func(t *testing.T) {
			got, err := formatOAPSNumber(tt.literal)
			if err != nil {
				t.Fatalf("formatOAPSNumber() returned error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("formatOAPSNumber(%s) = %s, want %s", tt.literal, got, tt.expected)
			}
		})
	}
}

func TestParseDecimal_Invalid(t *testing.T) {
	for _, lit := range []string{"", "-", "+1", "01", "-01", "1.", ".1", "1e", "1e+", "1.e1", "0x10", "1_000", " 1", "1 ", "--1", "1e1.5"} {
		t.Run(lit, func(t *testing.T) {
			if _, err := parseDecimal(lit); err == nil {
				t.Errorf("parseDecimal(%q) expected error, got nil", lit)
			}
		})
	}
}

// expected values are python3 repr(float(literal))
func TestPythonFloatRepr(t *testing.T) {
	tests := []struct {
		value    float64
		expected string
	}{
		{0, "0.0"},
		{math.Copysign(0, -1), "-0.0"},
		{1, "1.0"},
		{-2.5, "-2.5"},
		{0.1, "0.1"},
		{0.0001, "0.0001"},
		{0.00001, "1e-05"},
		{1.5e-7, "1.5e-07"},
		{123.0, "123.0"},
		{1e15, "1000000000000000.0"},
		{1e16, "1e+16"},
		{1.2345e16, "1.2345e+16"},
		{123456789012345678.0, "1.2345678901234568e+17"},
		{1e100, "1e+100"},
		{math.MaxFloat64, "1.7976931348623157e+308"},
		{5e-324, "5e-324"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := pythonFloatRepr(tt.value); got != tt.expected {
				t.Errorf("pythonFloatRepr(%v) = %s, want %s", tt.value, got, tt.expected)
			}
		})
	}
}

func TestFormatLegacyNumber(t *testing.T) {
	tests := []struct {
		literal  string
		isFloat  bool
		expected string
	}{
		{"-0", false, "0"},
		{"42", false, "42"},
		{"123456789012345678901234567890", false, "123456789012345678901234567890"},
		{"1.0", true, "1.0"},
		{"1E2", true, "100.0"},
		{"0.30000000000000004", true, "0.30000000000000004"},
		{"1.00000000000000000001", true, "1.0"},
		// numbers built from a float64 render as floats even when integral
		{"100", true, "100.0"},
	}

	for _, tt := range tests {
		t.Run(tt.literal, func(t *testing.T) {
			got, err := formatLegacyNumber(tt.literal, tt.isFloat)
			if err != nil {
				t.Fatalf("formatLegacyNumber() returned error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("formatLegacyNumber(%s) = %s, want %s", tt.literal, got, tt.expected)
			}
		})
	}
}
