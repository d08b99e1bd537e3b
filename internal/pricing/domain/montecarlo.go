package domain

import (
	"context"
	"math"
	"math/rand"

	instrument "github.com/openquant/derivativepricing/internal/instrument/domain"
)

// monteCarloPrice 风险中性 GBM 终值模拟（欧式）。
// 给定 seed 时结果可复现；antithetic 开启对偶变量方差缩减。
func monteCarloPrice(ctx context.Context, contract *instrument.VanillaOption, in modelInput, paths int, seed int64, antithetic bool) (float64, error) {
	rng := rand.New(rand.NewSource(seed))
	drift := (in.B - 0.5*in.V*in.V) * in.T
	diffusion := in.V * math.Sqrt(in.T)
	dir := float64(contract.Direction())

	var sum float64
	samples := 0
	for i := 0; i < paths; i++ {
		if i%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
		}
		z := rng.NormFloat64()
		st := in.S * math.Exp(drift+diffusion*z)
		sum += math.Max(dir*(st-in.K), 0)
		samples++
		if antithetic {
			st = in.S * math.Exp(drift-diffusion*z)
			sum += math.Max(dir*(st-in.K), 0)
			samples++
		}
	}
	return math.Exp(-in.R*in.T) * sum / float64(samples), nil
}
