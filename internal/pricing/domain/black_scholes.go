package domain

import (
	"math"

	instrument "github.com/openquant/derivativepricing/internal/instrument/domain"
)

// modelInput 模型输入
type modelInput struct {
	S float64 // 标的现值（离散现金流已扣除）
	K float64 // 执行价格
	T float64 // 到期时间 (年)
	R float64 // 本币无风险利率
	B float64 // 持有成本
	V float64 // 波动率
}

// blackScholesResult 闭式解输出
type blackScholesResult struct {
	Price float64
	Delta float64
	Gamma float64
	Theta float64
	Vega  float64
	Rho   float64
}

// calculateBlackScholes 广义 Black-Scholes 价格和 Greeks。
// 持有成本 b 统一吸收四类标的的差异：
//
//	b = r     股票无分红
//	b = r - q 股票连续分红 / Garman-Kohlhagen 外汇
//	b = 0     期货 (Black-76)
func calculateBlackScholes(optionType instrument.OptionType, in modelInput) blackScholesResult {
	sqrtT := math.Sqrt(in.T)
	d1 := (math.Log(in.S/in.K) + (in.B+0.5*in.V*in.V)*in.T) / (in.V * sqrtT)
	d2 := d1 - in.V*sqrtT

	carryDF := math.Exp((in.B - in.R) * in.T)
	discount := math.Exp(-in.R * in.T)

	var res blackScholesResult
	res.Gamma = carryDF * normPdf(d1) / (in.S * in.V * sqrtT)
	res.Vega = in.S * carryDF * normPdf(d1) * sqrtT

	if optionType == instrument.OptionTypeCall {
		res.Price = in.S*carryDF*normCdf(d1) - in.K*discount*normCdf(d2)
		res.Delta = carryDF * normCdf(d1)
		res.Theta = -in.S*carryDF*normPdf(d1)*in.V/(2*sqrtT) -
			(in.B-in.R)*in.S*carryDF*normCdf(d1) -
			in.R*in.K*discount*normCdf(d2)
		res.Rho = in.K * in.T * discount * normCdf(d2)
	} else {
		res.Price = in.K*discount*normCdf(-d2) - in.S*carryDF*normCdf(-d1)
		res.Delta = carryDF * (normCdf(d1) - 1)
		res.Theta = -in.S*carryDF*normPdf(d1)*in.V/(2*sqrtT) +
			(in.B-in.R)*in.S*carryDF*normCdf(-d1) +
			in.R*in.K*discount*normCdf(-d2)
		res.Rho = -in.K * in.T * discount * normCdf(-d2)
	}
	return res
}

// normCdf 标准正态分布累积分布函数
func normCdf(x float64) float64 {
	return 0.5 * (1 + math.Erf(x/math.Sqrt2))
}

// normPdf 标准正态分布概率密度函数
func normPdf(x float64) float64 {
	return math.Exp(-x*x/2) / math.Sqrt(2*math.Pi)
}
