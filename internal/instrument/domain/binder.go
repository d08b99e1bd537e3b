package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Greeks 希腊字母
type Greeks struct {
	Delta decimal.Decimal
	Gamma decimal.Decimal
	Theta decimal.Decimal
	Vega  decimal.Decimal
	Rho   decimal.Decimal
}

// PricingEngine 定价引擎
// 由外部模型包实现，绑定 (合约, 模型, 规范化参数) 后按需估值。
type PricingEngine interface {
	Model() string
	Price(ctx context.Context) (decimal.Decimal, error)
	Greeks(ctx context.Context) (Greeks, error)
}

// EngineFactory 定价引擎构造器
// 模型标识符是否受支持、模型专用参数是否合法都由构造器校验，
// 绑定层不重复目录成员检查。
type EngineFactory interface {
	NewEngine(contract *VanillaOption, model string, params Params) (PricingEngine, error)
}

// EngineBinder 引擎绑定器
// 目录与构造器都在创建时显式注入，没有任何包级单例。
type EngineBinder struct {
	catalog ModelCatalog
	factory EngineFactory
}

func NewEngineBinder(catalog ModelCatalog, factory EngineFactory) *EngineBinder {
	return &EngineBinder{catalog: catalog, factory: factory}
}

// Bind 绑定定价引擎。
// model 为空时按 (标的, 合约族, 行权方式) 查目录默认值，查不到报
// ErrNoDefaultModel；显式给出的 model 原样传给构造器，本层不预校验。
// 构造器返回的错误不包装直接上抛，这一层没有额外上下文可加。
func (b *EngineBinder) Bind(contract *VanillaOption, model string, market MarketData) (PricingEngine, error) {
	if market.Underlying() != contract.Underlying() {
		return nil, fmt.Errorf("%w: contract %s, market %s", ErrUnderlyingMismatch, contract.Underlying(), market.Underlying())
	}
	if model == "" {
		m, ok := b.catalog.DefaultModel(contract.Underlying(), contract.DerivativeType(), contract.ExpiryType())
		if !ok {
			return nil, fmt.Errorf("%w: %s/%s/%s", ErrNoDefaultModel,
				contract.Underlying(), contract.DerivativeType(), contract.ExpiryType())
		}
		model = m
	}
	params, err := market.Canonicalize()
	if err != nil {
		return nil, err
	}
	return b.factory.NewEngine(contract, model, params)
}

// ListModels 列出合约允许的模型，逗号分隔。
func (b *EngineBinder) ListModels(contract *VanillaOption) (string, error) {
	return b.ListModelsFor(contract.Underlying(), contract.ExpiryType())
}

// ListModelsFor 按 (标的, 行权方式) 列出允许的模型。
func (b *EngineBinder) ListModelsFor(u Underlying, e ExpiryType) (string, error) {
	models := b.catalog.PermittedModels(u, e)
	if len(models) == 0 {
		return "", fmt.Errorf("%w: %s/%s", ErrNoDefaultModel, u, e)
	}
	return strings.Join(models, ", "), nil
}
