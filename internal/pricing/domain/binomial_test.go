package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	instrument "github.com/openquant/derivativepricing/internal/instrument/domain"
)

func testContract(t *testing.T, optionType instrument.OptionType, expiryType instrument.ExpiryType) *instrument.VanillaOption {
	t.Helper()
	opt, err := instrument.NewEquityOption(instrument.ContractTerms{
		OptionType: optionType,
		ExpiryType: expiryType,
		Strike:     decimal.NewFromInt(100),
		ExpiryDate: "20260101",
	})
	require.NoError(t, err)
	return opt
}

func TestCRRConvergesToBlackScholes(t *testing.T) {
	in := modelInput{S: 100, K: 100, T: 1, R: 0.05, B: 0.05, V: 0.2}
	contract := testContract(t, instrument.OptionTypeCall, instrument.ExpiryTypeEuropean)

	bs := calculateBlackScholes(instrument.OptionTypeCall, in)
	tree := crrPrice(contract, in, 500)

	assert.InDelta(t, bs.Price, tree, 0.05)
}

func TestCRRPutConvergesToBlackScholes(t *testing.T) {
	in := modelInput{S: 100, K: 110, T: 0.5, R: 0.05, B: 0.03, V: 0.3}
	contract := testContract(t, instrument.OptionTypePut, instrument.ExpiryTypeEuropean)

	bs := calculateBlackScholes(instrument.OptionTypePut, in)
	tree := crrPrice(contract, in, 500)

	assert.InDelta(t, bs.Price, tree, 0.05)
}

func TestAmericanPutWorthAtLeastEuropean(t *testing.T) {
	in := modelInput{S: 100, K: 110, T: 1, R: 0.05, B: 0.05, V: 0.2}

	european := crrPrice(testContract(t, instrument.OptionTypePut, instrument.ExpiryTypeEuropean), in, 300)
	american := crrPrice(testContract(t, instrument.OptionTypePut, instrument.ExpiryTypeAmerican), in, 300)

	assert.GreaterOrEqual(t, american, european)
	// 深度价内美式看跌有明显的提前行权溢价
	assert.Greater(t, american, european+1e-3)
}

func TestAmericanPutNeverBelowIntrinsic(t *testing.T) {
	in := modelInput{S: 80, K: 110, T: 1, R: 0.05, B: 0.05, V: 0.2}
	contract := testContract(t, instrument.OptionTypePut, instrument.ExpiryTypeAmerican)

	price := crrPrice(contract, in, 300)
	assert.GreaterOrEqual(t, price, 30.0)
}
