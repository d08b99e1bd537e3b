package mysql

import (
	"context"
	"errors"

	"github.com/openquant/derivativepricing/internal/instrument/domain"
	"github.com/wyfcoding/pkg/contextx"
	"gorm.io/gorm"
)

type pricingResultRepository struct {
	db *gorm.DB
}

// NewPricingResultRepository 创建定价结果仓储实例
func NewPricingResultRepository(db *gorm.DB) domain.PricingResultRepository {
	return &pricingResultRepository{db: db}
}

func (r *pricingResultRepository) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		txCtx := contextx.WithTx(ctx, tx)
		return fn(txCtx)
	})
}

func (r *pricingResultRepository) SavePricingResult(ctx context.Context, res *domain.PricingResult) error {
	model := toPricingResultModel(res)
	if model == nil {
		return nil
	}

	if err := r.getDB(ctx).WithContext(ctx).Create(model).Error; err != nil {
		return err
	}
	res.ID = model.ID
	res.CreatedAt = model.CreatedAt
	res.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *pricingResultRepository) GetLatestPricingResult(ctx context.Context, symbol string) (*domain.PricingResult, error) {
	var model PricingResultModel
	err := r.getDB(ctx).WithContext(ctx).
		Where("symbol = ?", symbol).
		Order("calculated_at DESC").
		First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return toPricingResult(&model), err
}

func (r *pricingResultRepository) GetPricingResultHistory(ctx context.Context, symbol string, limit int) ([]*domain.PricingResult, error) {
	var models []*PricingResultModel
	err := r.getDB(ctx).WithContext(ctx).
		Where("symbol = ?", symbol).
		Order("calculated_at DESC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	results := make([]*domain.PricingResult, len(models))
	for i, m := range models {
		results[i] = toPricingResult(m)
	}
	return results, nil
}

func (r *pricingResultRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := contextx.GetTx(ctx).(*gorm.DB); ok {
		return tx
	}
	return r.db
}

type quoteRepository struct {
	db *gorm.DB
}

// NewQuoteRepository 创建标的行情仓储实例
func NewQuoteRepository(db *gorm.DB) domain.QuoteRepository {
	return &quoteRepository{db: db}
}

func (r *quoteRepository) SaveQuote(ctx context.Context, quote *domain.UnderlyingQuote) error {
	model := toQuoteModel(quote)
	if model == nil {
		return nil
	}

	db := r.db.WithContext(ctx)
	var existing QuoteModel
	err := db.Where("symbol = ?", model.Symbol).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := db.Create(model).Error; err != nil {
			return err
		}
		quote.ID = model.ID
		quote.CreatedAt = model.CreatedAt
		quote.UpdatedAt = model.UpdatedAt
		return nil
	}
	if err != nil {
		return err
	}

	// 乱序事件不得回退行情
	if existing.Timestamp >= model.Timestamp {
		return nil
	}
	return db.Model(&QuoteModel{}).
		Where("id = ?", existing.ID).
		Updates(map[string]any{
			"bid":       model.Bid,
			"ask":       model.Ask,
			"last":      model.Last,
			"timestamp": model.Timestamp,
		}).Error
}

func (r *quoteRepository) GetLatestQuote(ctx context.Context, symbol string) (*domain.UnderlyingQuote, error) {
	var model QuoteModel
	err := r.db.WithContext(ctx).Where("symbol = ?", symbol).First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return toQuote(&model), err
}
