package normalization

import (
	"strings"
	"testing"
)

type testEnum string

const (
	testEnumAlpha testEnum = "alpha"
	testEnumBeta  testEnum = "beta"
	testEnumGamma testEnum = "gamma"
)

func TestNormalizer_Basic(t *testing.T) {
	normalizer := NewNormalizer(map[string]testEnum{
		"alpha": testEnumAlpha,
		"beta":  testEnumBeta,
		"gamma": testEnumGamma,
	}, testEnumAlpha)

	tests := []struct {
		name     string
		input    string
		expected testEnum
	}{
		{"exact match", "alpha", testEnumAlpha},
		{"case insensitive", "ALPHA", testEnumAlpha},
		{"with spaces", "  beta  ", testEnumBeta},
		{"mixed case spaces", "  GaMmA  ", testEnumGamma},
		{"invalid input", "invalid", testEnumAlpha},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := normalizer.Normalize(tt.input)
			if result != tt.expected {
				t.Errorf("Normalize(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestNormalizer_WithError(t *testing.T) {
	normalizer := NewNormalizer(map[string]testEnum{
		"alpha": testEnumAlpha,
		"beta":  testEnumBeta,
	}, testEnumAlpha)

	result, err := normalizer.NormalizeWithError("ALPHA")
	if err != nil {
		t.Errorf("NormalizeWithError(valid input) returned error: %v", err)
	}
	if result != testEnumAlpha {
		t.Errorf("NormalizeWithError(valid input) = %v, want %v", result, testEnumAlpha)
	}

	_, err = normalizer.NormalizeWithError("delta")
	if err == nil {
		t.Fatal("NormalizeWithError(invalid input) should return error")
	}
	if !strings.Contains(err.Error(), "[alpha beta]") {
		t.Errorf("error should list sorted valid keys, got %v", err)
	}
}

func TestEnumNormalizer_NamesEnum(t *testing.T) {
	n := NewEnumNormalizer("database.driver", map[string]testEnum{"beta": testEnumBeta}, testEnumBeta)

	if _, err := n.NormalizeWithValidation("mysql"); err == nil || !strings.HasPrefix(err.Error(), "invalid database.driver") {
		t.Errorf("expected named validation error, got %v", err)
	}
	if keys := n.ValidKeys(); len(keys) != 1 || keys[0] != "beta" {
		t.Errorf("ValidKeys() = %v", keys)
	}
}
