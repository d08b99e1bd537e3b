package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashFlow 离散现金流输入，日期为 YYYYMMDD 字符串。
// 例如股票期权的离散分红 [{"20180610", 2}, {"20180624", 4}]。
type CashFlow struct {
	Date   string
	Amount decimal.Decimal
}

// CashDistribution 解析后的离散现金流
type CashDistribution struct {
	Date   time.Time
	Amount decimal.Decimal
}

// Params 规范化参数集
// 四类标的的市场数据统一映射到这组参数后再交给定价引擎，
// 引擎不需要知道标的类别各自的报价惯例。
// 每次绑定调用都重新组装一份，调用之间互不共享。
type Params struct {
	SpotOrForward    decimal.Decimal
	DomesticRate     float64
	CarryYield       float64
	StorageCostYield float64 // 仅商品标的使用，与便利收益率方向相反的持有成本
	DistributionPV   decimal.Decimal
	Schedule         []CashDistribution
	Volatility       float64
	PricingDate      time.Time

	// Extra 模型专用参数（模拟路径数、树步数、随机种子等），
	// 本层原样透传，由定价引擎负责解释和校验。
	Extra map[string]any
}
