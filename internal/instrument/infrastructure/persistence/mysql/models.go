package mysql

import (
	"time"

	"github.com/openquant/derivativepricing/internal/instrument/domain"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PricingResultModel MySQL 定价结果表映射
type PricingResultModel struct {
	gorm.Model
	Symbol        string          `gorm:"column:symbol;type:varchar(32);index;not null"`
	Underlying    string          `gorm:"column:underlying;type:varchar(20);not null"`
	OptionType    string          `gorm:"column:option_type;type:varchar(10);not null"`
	ExpiryType    string          `gorm:"column:expiry_type;type:varchar(10);not null"`
	Strike        decimal.Decimal `gorm:"column:strike;type:decimal(32,18);not null"`
	ExpiryDate    time.Time       `gorm:"column:expiry_date;not null"`
	ModelName     string          `gorm:"column:model_name;type:varchar(32);not null"`
	Premium       decimal.Decimal `gorm:"column:premium;type:decimal(32,18);not null"`
	SpotOrForward decimal.Decimal `gorm:"column:spot_or_forward;type:decimal(32,18);not null"`
	Delta         decimal.Decimal `gorm:"column:delta;type:decimal(32,18);not null"`
	Gamma         decimal.Decimal `gorm:"column:gamma;type:decimal(32,18);not null"`
	Theta         decimal.Decimal `gorm:"column:theta;type:decimal(32,18);not null"`
	Vega          decimal.Decimal `gorm:"column:vega;type:decimal(32,18);not null"`
	Rho           decimal.Decimal `gorm:"column:rho;type:decimal(32,18);not null"`
	CalculatedAt  int64           `gorm:"column:calculated_at;not null"`
}

func (PricingResultModel) TableName() string { return "instrument_pricing_results" }

// QuoteModel MySQL 标的行情表映射
type QuoteModel struct {
	gorm.Model
	Symbol    string          `gorm:"column:symbol;type:varchar(32);uniqueIndex;not null"`
	Bid       decimal.Decimal `gorm:"column:bid;type:decimal(32,18);not null"`
	Ask       decimal.Decimal `gorm:"column:ask;type:decimal(32,18);not null"`
	Last      decimal.Decimal `gorm:"column:last;type:decimal(32,18);not null"`
	Timestamp int64           `gorm:"column:timestamp;not null"`
}

func (QuoteModel) TableName() string { return "instrument_quotes" }

// CatalogEntryModel MySQL 模型目录表映射
type CatalogEntryModel struct {
	gorm.Model
	Underlying     string `gorm:"column:underlying;type:varchar(20);not null;index:idx_catalog_key"`
	DerivativeType string `gorm:"column:derivative_type;type:varchar(32);not null;index:idx_catalog_key"`
	ExpiryType     string `gorm:"column:expiry_type;type:varchar(10);not null;index:idx_catalog_key"`
	ModelName      string `gorm:"column:model_name;type:varchar(32);not null"`
	IsDefault      bool   `gorm:"column:is_default;not null"`
}

func (CatalogEntryModel) TableName() string { return "instrument_model_catalog" }

func toPricingResultModel(r *domain.PricingResult) *PricingResultModel {
	if r == nil {
		return nil
	}
	return &PricingResultModel{
		Model: gorm.Model{
			ID:        r.ID,
			CreatedAt: r.CreatedAt,
			UpdatedAt: r.UpdatedAt,
		},
		Symbol:        r.Symbol,
		Underlying:    string(r.Underlying),
		OptionType:    string(r.OptionType),
		ExpiryType:    string(r.ExpiryType),
		Strike:        r.Strike,
		ExpiryDate:    r.ExpiryDate,
		ModelName:     r.Model,
		Premium:       r.Premium,
		SpotOrForward: r.SpotOrForward,
		Delta:         r.Delta,
		Gamma:         r.Gamma,
		Theta:         r.Theta,
		Vega:          r.Vega,
		Rho:           r.Rho,
		CalculatedAt:  r.CalculatedAt,
	}
}

func toPricingResult(m *PricingResultModel) *domain.PricingResult {
	if m == nil {
		return nil
	}
	return &domain.PricingResult{
		ID:            m.ID,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
		Symbol:        m.Symbol,
		Underlying:    domain.Underlying(m.Underlying),
		OptionType:    domain.OptionType(m.OptionType),
		ExpiryType:    domain.ExpiryType(m.ExpiryType),
		Strike:        m.Strike,
		ExpiryDate:    m.ExpiryDate,
		Model:         m.ModelName,
		Premium:       m.Premium,
		SpotOrForward: m.SpotOrForward,
		Delta:         m.Delta,
		Gamma:         m.Gamma,
		Theta:         m.Theta,
		Vega:          m.Vega,
		Rho:           m.Rho,
		CalculatedAt:  m.CalculatedAt,
	}
}

func toQuoteModel(q *domain.UnderlyingQuote) *QuoteModel {
	if q == nil {
		return nil
	}
	return &QuoteModel{
		Model: gorm.Model{
			ID:        q.ID,
			CreatedAt: q.CreatedAt,
			UpdatedAt: q.UpdatedAt,
		},
		Symbol:    q.Symbol,
		Bid:       q.Bid,
		Ask:       q.Ask,
		Last:      q.Last,
		Timestamp: q.Timestamp,
	}
}

func toQuote(m *QuoteModel) *domain.UnderlyingQuote {
	if m == nil {
		return nil
	}
	return &domain.UnderlyingQuote{
		ID:        m.ID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		Symbol:    m.Symbol,
		Bid:       m.Bid,
		Ask:       m.Ask,
		Last:      m.Last,
		Timestamp: m.Timestamp,
	}
}

func toCatalogEntry(m *CatalogEntryModel) domain.CatalogEntry {
	return domain.CatalogEntry{
		Underlying:     domain.Underlying(m.Underlying),
		DerivativeType: domain.DerivativeType(m.DerivativeType),
		ExpiryType:     domain.ExpiryType(m.ExpiryType),
		Model:          m.ModelName,
		Default:        m.IsDefault,
	}
}

func toCatalogEntryModel(e domain.CatalogEntry) *CatalogEntryModel {
	return &CatalogEntryModel{
		Underlying:     string(e.Underlying),
		DerivativeType: string(e.DerivativeType),
		ExpiryType:     string(e.ExpiryType),
		ModelName:      e.Model,
		IsDefault:      e.Default,
	}
}
