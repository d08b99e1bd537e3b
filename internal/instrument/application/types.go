package application

import "errors"

var ErrUnknownUnderlying = errors.New("unknown underlying class")

// CashFlowInput 离散现金流输入
type CashFlowInput struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

// PriceOptionCommand 期权定价命令。
// Underlying 决定哪些市场数据字段有效：股票用 Spot/RiskFreeRate/
// DividendYield/DividendSchedule，期货用 ForwardQuote/RiskFreeRate，
// 外汇用 Spot/DomesticRate/ForeignRate，商品用 Spot/RiskFreeRate/
// ConvenienceYield/StorageCostYield。
type PriceOptionCommand struct {
	Symbol     string
	Underlying string
	OptionType string
	ExpiryType string
	Strike     float64
	ExpiryDate string // YYYYMMDD
	Model      string // 为空时用目录默认模型

	Spot             float64
	ForwardQuote     float64
	RiskFreeRate     float64
	DividendYield    float64
	DividendSchedule []CashFlowInput
	DomesticRate     float64
	ForeignRate      float64
	ConvenienceYield float64
	StorageCostYield float64
	Volatility       float64
	PricingDate      string // YYYYMMDD

	ModelParams map[string]any
}

// PayoffQuery 行权收益查询
type PayoffQuery struct {
	Underlying string
	OptionType string
	ExpiryType string
	Strike     float64
	ExpiryDate string // YYYYMMDD
	Spot       float64
}
