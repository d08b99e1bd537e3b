package domain

import (
	"context"
	"time"
)

const (
	OptionPricedEventType = "instrument.option.priced"
	QuoteUpdatedEventType = "marketdata.quote.updated"
)

// OptionPricedEvent 期权定价完成事件
type OptionPricedEvent struct {
	Symbol       string    `json:"symbol"`
	Underlying   string    `json:"underlying"`
	OptionType   string    `json:"option_type"`
	ExpiryType   string    `json:"expiry_type"`
	Strike       string    `json:"strike"`
	ExpiryDate   string    `json:"expiry_date"`
	Model        string    `json:"model"`
	Premium      string    `json:"premium"`
	SpotOrFwd    string    `json:"spot_or_fwd"`
	Volatility   float64   `json:"volatility"`
	DomesticRate float64   `json:"domestic_rate"`
	CarryYield   float64   `json:"carry_yield"`
	CalculatedAt int64     `json:"calculated_at"`
	OccurredOn   time.Time `json:"occurred_on"`
}

// QuoteUpdatedEvent 标的行情更新事件，由行情服务发布。
type QuoteUpdatedEvent struct {
	Symbol    string `json:"symbol"`
	BidPrice  string `json:"bid_price"`
	AskPrice  string `json:"ask_price"`
	LastPrice string `json:"last_price"`
	Timestamp int64  `json:"timestamp"`
}

// EventPublisher 事件发布者接口
type EventPublisher interface {
	Publish(ctx context.Context, topic, key string, event any) error
	PublishInTx(ctx context.Context, tx any, topic, key string, event any) error
}
