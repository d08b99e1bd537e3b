package domain

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEngine struct {
	model string
}

func (e *fakeEngine) Model() string { return e.model }

func (e *fakeEngine) Price(ctx context.Context) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func (e *fakeEngine) Greeks(ctx context.Context) (Greeks, error) {
	return Greeks{}, nil
}

type fakeFactory struct {
	gotModel  string
	gotParams Params
}

func (f *fakeFactory) NewEngine(contract *VanillaOption, model string, params Params) (PricingEngine, error) {
	f.gotModel = model
	f.gotParams = params
	return &fakeEngine{model: model}, nil
}

func europeanFXContract(t *testing.T) *VanillaOption {
	t.Helper()
	opt, err := NewFXOption(ContractTerms{Strike: decimal.NewFromFloat(1.6), ExpiryDate: "20260101"})
	require.NoError(t, err)
	return opt
}

func fxMarket() FXMarket {
	return FXMarket{
		Spot:         decimal.NewFromFloat(1.56),
		DomesticRate: 0.06,
		ForeignRate:  0.08,
		Volatility:   0.12,
		PricingDate:  "20250101",
	}
}

func TestBindUsesCatalogDefault(t *testing.T) {
	factory := &fakeFactory{}
	binder := NewEngineBinder(DefaultCatalog(), factory)

	engine, err := binder.Bind(europeanFXContract(t), "", fxMarket())
	require.NoError(t, err)

	assert.Equal(t, ModelBlackScholes, engine.Model())
	assert.Equal(t, 0.08, factory.gotParams.CarryYield)
}

func TestBindPassesExplicitModelThrough(t *testing.T) {
	factory := &fakeFactory{}
	binder := NewEngineBinder(DefaultCatalog(), factory)

	// 显式模型不预校验，原样交给构造器
	_, err := binder.Bind(europeanFXContract(t), "SomethingElse", fxMarket())
	require.NoError(t, err)
	assert.Equal(t, "SomethingElse", factory.gotModel)
}

func TestBindRejectsUnderlyingMismatch(t *testing.T) {
	binder := NewEngineBinder(DefaultCatalog(), &fakeFactory{})

	opt, err := NewEquityOption(ContractTerms{Strike: decimal.NewFromInt(100), ExpiryDate: "20260101"})
	require.NoError(t, err)

	_, err = binder.Bind(opt, "", fxMarket())
	assert.ErrorIs(t, err, ErrUnderlyingMismatch)
}

func TestBindNoDefaultModel(t *testing.T) {
	binder := NewEngineBinder(NewMemoryCatalog(nil), &fakeFactory{})

	_, err := binder.Bind(europeanFXContract(t), "", fxMarket())
	assert.ErrorIs(t, err, ErrNoDefaultModel)
}

func TestBindPropagatesCanonicalizeError(t *testing.T) {
	binder := NewEngineBinder(DefaultCatalog(), &fakeFactory{})

	bad := fxMarket()
	bad.Volatility = 0
	_, err := binder.Bind(europeanFXContract(t), "", bad)
	assert.ErrorIs(t, err, ErrInvalidMarketValue)
}

func TestListModels(t *testing.T) {
	binder := NewEngineBinder(DefaultCatalog(), &fakeFactory{})

	models, err := binder.ListModels(europeanFXContract(t))
	require.NoError(t, err)
	assert.Equal(t, "BlackScholes, Binomial, MonteCarlo", models)
}

func TestListModelsForEmpty(t *testing.T) {
	binder := NewEngineBinder(NewMemoryCatalog(nil), &fakeFactory{})

	_, err := binder.ListModelsFor(UnderlyingStock, ExpiryTypeEuropean)
	assert.ErrorIs(t, err, ErrNoDefaultModel)
}

// 列表里的每个模型都应当能实际绑定成功
func TestListedModelsAllBind(t *testing.T) {
	factory := &fakeFactory{}
	binder := NewEngineBinder(DefaultCatalog(), factory)
	contract := europeanFXContract(t)

	for _, model := range DefaultCatalog().PermittedModels(contract.Underlying(), contract.ExpiryType()) {
		engine, err := binder.Bind(contract, model, fxMarket())
		require.NoError(t, err, "model %s", model)
		assert.Equal(t, model, engine.Model())
	}
}
