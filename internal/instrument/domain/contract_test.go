package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEquityOptionDefaults(t *testing.T) {
	opt, err := NewEquityOption(ContractTerms{
		Strike:     decimal.NewFromInt(100),
		ExpiryDate: "20260101",
	})
	require.NoError(t, err)

	assert.Equal(t, OptionTypeCall, opt.OptionType())
	assert.Equal(t, ExpiryTypeEuropean, opt.ExpiryType())
	assert.Equal(t, DerivativeVanillaOption, opt.DerivativeType())
	assert.Equal(t, UnderlyingStock, opt.Underlying())
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), opt.ExpiryDate())
}

func TestConstructorsSetUnderlying(t *testing.T) {
	terms := ContractTerms{Strike: decimal.NewFromInt(100), ExpiryDate: "20260101"}

	cases := []struct {
		underlying Underlying
		build      func(ContractTerms) (*VanillaOption, error)
	}{
		{UnderlyingStock, NewEquityOption},
		{UnderlyingFutures, NewFuturesOption},
		{UnderlyingFX, NewFXOption},
		{UnderlyingCommodity, NewCommodityOption},
	}
	for _, tc := range cases {
		t.Run(string(tc.underlying), func(t *testing.T) {
			opt, err := tc.build(terms)
			require.NoError(t, err)
			assert.Equal(t, tc.underlying, opt.Underlying())
		})
	}
}

func TestNewVanillaOptionRejectsInvalidEnums(t *testing.T) {
	base := ContractTerms{Strike: decimal.NewFromInt(100), ExpiryDate: "20260101"}

	bad := base
	bad.OptionType = "call" // 大小写敏感，不做归一化
	_, err := NewEquityOption(bad)
	assert.ErrorIs(t, err, ErrInvalidOptionType)

	bad = base
	bad.ExpiryType = "Bermudan"
	_, err = NewEquityOption(bad)
	assert.ErrorIs(t, err, ErrInvalidExpiryType)
}

func TestNewVanillaOptionRejectsBadStrike(t *testing.T) {
	_, err := NewEquityOption(ContractTerms{Strike: decimal.Zero, ExpiryDate: "20260101"})
	assert.ErrorIs(t, err, ErrInvalidStrike)

	_, err = NewEquityOption(ContractTerms{Strike: decimal.NewFromInt(-5), ExpiryDate: "20260101"})
	assert.ErrorIs(t, err, ErrInvalidStrike)
}

func TestNewVanillaOptionRejectsBadExpiryDate(t *testing.T) {
	_, err := NewEquityOption(ContractTerms{Strike: decimal.NewFromInt(100), ExpiryDate: "2026-01-01"})
	assert.ErrorIs(t, err, ErrMalformedDate)
}

func TestDirection(t *testing.T) {
	call, err := NewEquityOption(ContractTerms{OptionType: OptionTypeCall, Strike: decimal.NewFromInt(100), ExpiryDate: "20260101"})
	require.NoError(t, err)
	assert.Equal(t, 1, call.Direction())

	put, err := NewEquityOption(ContractTerms{OptionType: OptionTypePut, Strike: decimal.NewFromInt(100), ExpiryDate: "20260101"})
	require.NoError(t, err)
	assert.Equal(t, -1, put.Direction())
}
