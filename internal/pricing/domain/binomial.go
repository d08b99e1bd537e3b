package domain

import (
	"math"

	instrument "github.com/openquant/derivativepricing/internal/instrument/domain"
)

// crrPrice Cox-Ross-Rubinstein 二叉树定价。
// 美式行权在每个节点用内在价值和持有价值择优。
func crrPrice(contract *instrument.VanillaOption, in modelInput, steps int) float64 {
	dt := in.T / float64(steps)
	u := math.Exp(in.V * math.Sqrt(dt))
	d := 1 / u
	p := (math.Exp(in.B*dt) - d) / (u - d)
	discount := math.Exp(-in.R * dt)
	dir := float64(contract.Direction())
	american := contract.ExpiryType() == instrument.ExpiryTypeAmerican

	values := make([]float64, steps+1)
	for i := 0; i <= steps; i++ {
		s := in.S * math.Pow(u, float64(steps-i)) * math.Pow(d, float64(i))
		values[i] = math.Max(dir*(s-in.K), 0)
	}

	for step := steps - 1; step >= 0; step-- {
		for i := 0; i <= step; i++ {
			continuation := discount * (p*values[i] + (1-p)*values[i+1])
			if american {
				s := in.S * math.Pow(u, float64(step-i)) * math.Pow(d, float64(i))
				values[i] = math.Max(continuation, math.Max(dir*(s-in.K), 0))
			} else {
				values[i] = continuation
			}
		}
	}
	return values[0]
}
