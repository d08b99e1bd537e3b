package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	instrument "github.com/openquant/derivativepricing/internal/instrument/domain"
)

func TestBlackScholesKnownValues(t *testing.T) {
	// S=100, K=100, T=1, r=5%, 无分红 (b=r), vol=20%
	in := modelInput{S: 100, K: 100, T: 1, R: 0.05, B: 0.05, V: 0.2}

	call := calculateBlackScholes(instrument.OptionTypeCall, in)
	assert.InDelta(t, 10.4506, call.Price, 1e-3)
	assert.InDelta(t, 0.6368, call.Delta, 1e-3)

	put := calculateBlackScholes(instrument.OptionTypePut, in)
	assert.InDelta(t, 5.5735, put.Price, 1e-3)
	assert.Negative(t, put.Delta)
}

func TestBlack76(t *testing.T) {
	// 期货期权 b=0 退化为 Black-76
	in := modelInput{S: 100, K: 100, T: 1, R: 0.05, B: 0, V: 0.2}

	call := calculateBlackScholes(instrument.OptionTypeCall, in)
	assert.InDelta(t, 7.5770, call.Price, 1e-3)
}

func TestGarmanKohlhagen(t *testing.T) {
	// Garman-Kohlhagen: S=1.56, K=1.6, T=0.5, rd=6%, rf=8%, vol=12%
	in := modelInput{S: 1.56, K: 1.6, T: 0.5, R: 0.06, B: -0.02, V: 0.12}

	call := calculateBlackScholes(instrument.OptionTypeCall, in)
	assert.InDelta(t, 0.0291, call.Price, 1e-4)
}

func TestPutCallParity(t *testing.T) {
	inputs := []modelInput{
		{S: 100, K: 100, T: 1, R: 0.05, B: 0.05, V: 0.2},
		{S: 100, K: 110, T: 0.5, R: 0.03, B: 0.01, V: 0.35},
		{S: 1.56, K: 1.6, T: 0.5, R: 0.06, B: -0.02, V: 0.12},
		{S: 90, K: 80, T: 2, R: 0.07, B: 0, V: 0.15},
	}
	for _, in := range inputs {
		call := calculateBlackScholes(instrument.OptionTypeCall, in)
		put := calculateBlackScholes(instrument.OptionTypePut, in)

		// C - P = S*e^((b-r)T) - K*e^(-rT)
		want := in.S*math.Exp((in.B-in.R)*in.T) - in.K*math.Exp(-in.R*in.T)
		assert.InDelta(t, want, call.Price-put.Price, 1e-10)
	}
}

func TestGreeksSigns(t *testing.T) {
	in := modelInput{S: 100, K: 100, T: 1, R: 0.05, B: 0.05, V: 0.2}

	call := calculateBlackScholes(instrument.OptionTypeCall, in)
	assert.Greater(t, call.Delta, 0.0)
	assert.Less(t, call.Delta, 1.0)
	assert.Positive(t, call.Gamma)
	assert.Positive(t, call.Vega)
	assert.Positive(t, call.Rho)

	put := calculateBlackScholes(instrument.OptionTypePut, in)
	assert.Negative(t, put.Delta)
	assert.Negative(t, put.Rho)
	// Gamma 和 Vega 对看涨看跌相同
	assert.InDelta(t, call.Gamma, put.Gamma, 1e-12)
	assert.InDelta(t, call.Vega, put.Vega, 1e-12)
}

func TestNormCdf(t *testing.T) {
	assert.InDelta(t, 0.5, normCdf(0), 1e-12)
	assert.InDelta(t, 0.841345, normCdf(1), 1e-5)
	assert.InDelta(t, 0.158655, normCdf(-1), 1e-5)
	assert.InDelta(t, 1.0, normCdf(8), 1e-9)
}
