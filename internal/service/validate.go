package service

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/smbilal1/Huts-And-Farms-AI-sub000/internal/domain"
)

const nationalIDLength = 13

var (
	amountStrip    = regexp.MustCompile(`[^0-9.]`)
	idNumberStrip  = strings.NewReplacer("-", "", " ", "")
	nameCharsetBad = regexp.MustCompile(`[^\p{L}\p{M}\s.'-]`)
)

// validateBuyer returns the trimmed name and the national id without separators.
func validateBuyer(name, idNumber string) (string, string, error) {
	name = strings.Join(strings.Fields(name), " ")
	if name == "" {
		return "", "", fmt.Errorf("%w: buyer name is required", domain.ErrValidation)
	}
	if len([]rune(name)) < 2 || nameCharsetBad.MatchString(name) {
		return "", "", fmt.Errorf("%w: buyer name %q is not valid", domain.ErrValidation, name)
	}

	id := idNumberStrip.Replace(strings.TrimSpace(idNumber))
	if id == "" {
		return "", "", fmt.Errorf("%w: buyer national id is required", domain.ErrValidation)
	}
	if len(id) != nationalIDLength || strings.Trim(id, "0123456789") != "" {
		return "", "", fmt.Errorf("%w: national id must be %d digits", domain.ErrValidation, nationalIDLength)
	}

	return name, id, nil
}

// normalizeAmount keeps only digits and the decimal point: "Rs. 4,998" -> 4998,
// "5 000" -> 5000. Dots left at the edges come from currency labels and are dropped.
func normalizeAmount(raw string) (decimal.Decimal, error) {
	digits := strings.Trim(amountStrip.ReplaceAllString(raw, ""), ".")
	if digits == "" || strings.Count(digits, ".") > 1 {
		return decimal.Zero, fmt.Errorf("%w: amount %q is not a number", domain.ErrValidation, raw)
	}

	amount, err := decimal.NewFromString(digits)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: amount %q is not a number", domain.ErrValidation, raw)
	}
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: amount must be positive", domain.ErrValidation)
	}

	return amount, nil
}

func withinTolerance(expected, provided, tolerance decimal.Decimal) bool {
	return expected.Sub(provided).Abs().LessThanOrEqual(tolerance)
}
