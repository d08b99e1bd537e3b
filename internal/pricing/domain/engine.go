package domain

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	instrument "github.com/openquant/derivativepricing/internal/instrument/domain"
)

var (
	ErrUnsupportedModel = errors.New("unsupported pricing model")
	ErrContractExpired  = errors.New("contract expires on or before pricing date")
	ErrBadModelParam    = errors.New("invalid model parameter")
)

// 模型专用参数键名
const (
	ParamPaths      = "no_of_path"
	ParamSteps      = "no_of_steps"
	ParamSeed       = "seed"
	ParamAntithetic = "antithetic"
)

const (
	defaultTreeSteps = 200
	defaultMCPaths   = 10000
	defaultLSMSteps  = 50
)

// Factory 定价引擎构造器
// 模型标识符在这里对照目录的允许集合校验，绑定层显式把
// 这项检查委托给了构造器。
type Factory struct {
	catalog instrument.ModelCatalog
}

func NewFactory(catalog instrument.ModelCatalog) *Factory {
	return &Factory{catalog: catalog}
}

func (f *Factory) NewEngine(contract *instrument.VanillaOption, model string, params instrument.Params) (instrument.PricingEngine, error) {
	permitted := f.catalog.PermittedModels(contract.Underlying(), contract.ExpiryType())
	if !containsModel(permitted, model) {
		return nil, fmt.Errorf("%w: %q for %s/%s, permitted: %s",
			ErrUnsupportedModel, model, contract.Underlying(), contract.ExpiryType(), strings.Join(permitted, ", "))
	}
	e := &Engine{contract: contract, model: model, params: params}
	if e.timeToExpiry() <= 0 {
		return nil, fmt.Errorf("%w: expiry %s, pricing date %s",
			ErrContractExpired,
			contract.ExpiryDate().Format("2006-01-02"),
			params.PricingDate.Format("2006-01-02"))
	}
	return e, nil
}

func containsModel(models []string, m string) bool {
	for _, v := range models {
		if v == m {
			return true
		}
	}
	return false
}

// Engine 绑定了单个合约与规范化参数的定价引擎
type Engine struct {
	contract *instrument.VanillaOption
	model    string
	params   instrument.Params
}

func (e *Engine) Model() string { return e.model }

// timeToExpiry 到期年化时间，act/365
func (e *Engine) timeToExpiry() float64 {
	return e.contract.ExpiryDate().Sub(e.params.PricingDate).Hours() / 24 / 365
}

// input 折算成模型输入。
// 持有成本 b = r - 持有收益率 + 仓储成本率；期货 b=0 退化为
// Black-76，外汇 b=rd-rf 即 Garman-Kohlhagen。
// 离散现金流按托管分红法从现值中扣除。
func (e *Engine) input() modelInput {
	r := e.params.DomesticRate
	t := e.timeToExpiry()
	s, _ := e.params.SpotOrForward.Float64()

	pv, _ := e.params.DistributionPV.Float64()
	for _, cf := range e.params.Schedule {
		if !cf.Date.After(e.params.PricingDate) || cf.Date.After(e.contract.ExpiryDate()) {
			continue
		}
		amount, _ := cf.Amount.Float64()
		ti := cf.Date.Sub(e.params.PricingDate).Hours() / 24 / 365
		pv += amount * math.Exp(-r*ti)
	}

	k, _ := e.contract.Strike().Float64()
	return modelInput{
		S: s - pv,
		K: k,
		T: t,
		R: r,
		B: r - e.params.CarryYield + e.params.StorageCostYield,
		V: e.params.Volatility,
	}
}

// Price 计算期权理论价格
func (e *Engine) Price(ctx context.Context) (decimal.Decimal, error) {
	in := e.input()
	switch e.model {
	case instrument.ModelBlackScholes:
		res := calculateBlackScholes(e.contract.OptionType(), in)
		return decimal.NewFromFloat(res.Price), nil

	case instrument.ModelBinomial:
		steps, err := intParam(e.params.Extra, ParamSteps, defaultTreeSteps)
		if err != nil {
			return decimal.Zero, err
		}
		price := crrPrice(e.contract, in, steps)
		return decimal.NewFromFloat(price), nil

	case instrument.ModelMonteCarlo:
		paths, err := intParam(e.params.Extra, ParamPaths, defaultMCPaths)
		if err != nil {
			return decimal.Zero, err
		}
		seed, err := int64Param(e.params.Extra, ParamSeed, 1)
		if err != nil {
			return decimal.Zero, err
		}
		antithetic, err := boolParam(e.params.Extra, ParamAntithetic, false)
		if err != nil {
			return decimal.Zero, err
		}
		price, err := monteCarloPrice(ctx, e.contract, in, paths, seed, antithetic)
		if err != nil {
			return decimal.Zero, err
		}
		return decimal.NewFromFloat(price), nil

	case instrument.ModelLongstaffSchwartz:
		paths, err := intParam(e.params.Extra, ParamPaths, defaultMCPaths)
		if err != nil {
			return decimal.Zero, err
		}
		steps, err := intParam(e.params.Extra, ParamSteps, defaultLSMSteps)
		if err != nil {
			return decimal.Zero, err
		}
		price, err := newLSMPricer().price(e.contract, in, paths, steps)
		if err != nil {
			return decimal.Zero, err
		}
		return decimal.NewFromFloat(price), nil
	}
	return decimal.Zero, fmt.Errorf("%w: %q", ErrUnsupportedModel, e.model)
}

// Greeks 计算希腊字母。只有闭式解模型给出解析 Greeks，
// 数值模型返回零值。
func (e *Engine) Greeks(ctx context.Context) (instrument.Greeks, error) {
	if e.model != instrument.ModelBlackScholes {
		return instrument.Greeks{}, nil
	}
	res := calculateBlackScholes(e.contract.OptionType(), e.input())
	return instrument.Greeks{
		Delta: decimal.NewFromFloat(res.Delta),
		Gamma: decimal.NewFromFloat(res.Gamma),
		Theta: decimal.NewFromFloat(res.Theta),
		Vega:  decimal.NewFromFloat(res.Vega),
		Rho:   decimal.NewFromFloat(res.Rho),
	}, nil
}

func intParam(extra map[string]any, name string, def int) (int, error) {
	v, ok := extra[name]
	if !ok {
		return def, nil
	}
	switch n := v.(type) {
	case int:
		if n > 0 {
			return n, nil
		}
	case int64:
		if n > 0 {
			return int(n), nil
		}
	case float64:
		if n > 0 && n == float64(int(n)) {
			return int(n), nil
		}
	}
	return 0, fmt.Errorf("%w: %s=%v must be a positive integer", ErrBadModelParam, name, v)
}

func int64Param(extra map[string]any, name string, def int64) (int64, error) {
	v, ok := extra[name]
	if !ok {
		return def, nil
	}
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int64:
		return n, nil
	case float64:
		if n == float64(int64(n)) {
			return int64(n), nil
		}
	}
	return 0, fmt.Errorf("%w: %s=%v must be an integer", ErrBadModelParam, name, v)
}

func boolParam(extra map[string]any, name string, def bool) (bool, error) {
	v, ok := extra[name]
	if !ok {
		return def, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %s=%v must be a boolean", ErrBadModelParam, name, v)
	}
	return b, nil
}
