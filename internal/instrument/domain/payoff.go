package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Intrinsic 内在价值
//
//	Call: max(S-K, 0)
//	Put:  max(K-S, 0)
//
// direction 为 +1 (Call) 或 -1 (Put)。
func Intrinsic(direction int, strike, spot decimal.Decimal) decimal.Decimal {
	v := spot.Sub(strike).Mul(decimal.NewFromInt(int64(direction)))
	if v.IsNegative() {
		return decimal.Zero
	}
	return v
}

// Payoff 计算合约在给定标的价格下的行权收益。
// 收益只取决于标的终值与执行价，与行权方式无关；
// 美式/欧式的差异由定价模型在行权时点的选择上体现。
func (o *VanillaOption) Payoff(spot decimal.Decimal) (decimal.Decimal, error) {
	if spot.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: spot %s is negative", ErrInvalidMarketValue, spot)
	}
	return Intrinsic(o.Direction(), o.strike, spot), nil
}
