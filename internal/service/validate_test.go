package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/smbilal1/Huts-And-Farms-AI-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateBuyer(t *testing.T) {
	tests := []struct {
		name     string
		buyer    string
		idNumber string
		wantName string
		wantID   string
		wantErr  bool
	}{
		{name: "valid with dashes", buyer: "  Alice   Khan ", idNumber: "35202-1234567-1", wantName: "Alice Khan", wantID: "3520212345671"},
		{name: "valid plain", buyer: "Bob", idNumber: "3520212345671", wantName: "Bob", wantID: "3520212345671"},
		{name: "empty name", buyer: "  ", idNumber: "3520212345671", wantErr: true},
		{name: "digits in name", buyer: "B0b", idNumber: "3520212345671", wantErr: true},
		{name: "short id", buyer: "Bob", idNumber: "12345", wantErr: true},
		{name: "letters in id", buyer: "Bob", idNumber: "35202A2345671", wantErr: true},
		{name: "missing id", buyer: "Bob", idNumber: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, id, err := validateBuyer(tt.buyer, tt.idNumber)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestNormalizeAmount(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "4998", want: "4998"},
		{raw: "Rs. 4,998", want: "4998"},
		{raw: "PKR 5,000.50 only", want: "5000.5"},
		{raw: "5 000", want: "5000"},
		{raw: "Rs.5000/-", want: "5000"},
		{raw: "1.200.50", wantErr: true},
		{raw: "abc", wantErr: true},
		{raw: "", wantErr: true},
		{raw: "0", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeAmount(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestWithinTolerance(t *testing.T) {
	expected := decimal.NewFromInt(5000)
	one := decimal.NewFromInt(1)

	assert.True(t, withinTolerance(expected, decimal.NewFromInt(4999), one))
	assert.True(t, withinTolerance(expected, decimal.NewFromInt(5001), one))
	assert.False(t, withinTolerance(expected, decimal.NewFromInt(4998), one))
	assert.False(t, withinTolerance(expected, decimal.NewFromInt(4000), one))
}
