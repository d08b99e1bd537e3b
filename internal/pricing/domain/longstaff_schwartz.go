package domain

import (
	"github.com/wyfcoding/pkg/algos/finance"

	instrument "github.com/openquant/derivativepricing/internal/instrument/domain"
)

// lsmPricer 实现了 Longstaff-Schwartz (LSM) 美式期权蒙特卡洛定价
type lsmPricer struct {
	impl *finance.LSMPricer
}

func newLSMPricer() *lsmPricer {
	return &lsmPricer{
		impl: finance.NewLSMPricer(2),
	}
}

// price 计算美式期权的当前公允价值。
// LSM 实现不带持有成本项，按无分红标的处理。
func (p *lsmPricer) price(contract *instrument.VanillaOption, in modelInput, paths, steps int) (float64, error) {
	return p.impl.ComputePrice(finance.AmericanOptionParams{
		S0:    in.S,
		K:     in.K,
		T:     in.T,
		R:     in.R,
		Sigma: in.V,
		IsPut: contract.OptionType() == instrument.OptionTypePut,
		Paths: paths,
		Steps: steps,
	})
}
