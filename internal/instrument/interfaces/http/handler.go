package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/wyfcoding/pkg/logging"

	"github.com/openquant/derivativepricing/internal/instrument/application"
	"github.com/openquant/derivativepricing/internal/instrument/domain"
	pricing "github.com/openquant/derivativepricing/internal/pricing/domain"
)

// HTTP 处理器
// 负责处理期权合约定价与查询相关的 HTTP 请求
type InstrumentHandler struct {
	command *application.InstrumentCommandService
	query   *application.InstrumentQueryService
}

// 创建 HTTP 处理器实例
// command/query: 注入的命令与查询应用服务
func NewInstrumentHandler(command *application.InstrumentCommandService, query *application.InstrumentQueryService) *InstrumentHandler {
	return &InstrumentHandler{command: command, query: query}
}

// 注册路由
// 将处理器方法绑定到 Gin 路由引擎
func (h *InstrumentHandler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api/v1/instrument")
	{
		api.POST("/price", h.PriceOption)
		api.POST("/payoff", h.Payoff)
		api.GET("/models", h.ListModels)
		api.GET("/results/latest", h.GetLatestResult)
		api.GET("/results/history", h.GetResultHistory)
		api.GET("/quotes/latest", h.GetLatestQuote)
	}
}

// PriceOptionRequest 期权定价请求
type PriceOptionRequest struct {
	Symbol     string  `json:"symbol" binding:"required"`
	Underlying string  `json:"underlying" binding:"required"`
	OptionType string  `json:"option_type"`
	ExpiryType string  `json:"expiry_type"`
	Strike     float64 `json:"strike" binding:"required"`
	ExpiryDate string  `json:"expiry_date" binding:"required"`
	Model      string  `json:"model"`

	Spot             float64                     `json:"spot"`
	ForwardQuote     float64                     `json:"forward_quote"`
	RiskFreeRate     float64                     `json:"risk_free_rate"`
	DividendYield    float64                     `json:"dividend_yield"`
	DividendSchedule []application.CashFlowInput `json:"dividend_schedule"`
	DomesticRate     float64                     `json:"domestic_rate"`
	ForeignRate      float64                     `json:"foreign_rate"`
	ConvenienceYield float64                     `json:"convenience_yield"`
	StorageCostYield float64                     `json:"storage_cost_yield"`
	Volatility       float64                     `json:"volatility" binding:"required"`
	PricingDate      string                      `json:"pricing_date" binding:"required"`

	ModelParams map[string]any `json:"model_params"`
}

// PriceOption 期权定价
func (h *InstrumentHandler) PriceOption(c *gin.Context) {
	var req PriceOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.command.PriceOption(c.Request.Context(), application.PriceOptionCommand{
		Symbol:           req.Symbol,
		Underlying:       req.Underlying,
		OptionType:       req.OptionType,
		ExpiryType:       req.ExpiryType,
		Strike:           req.Strike,
		ExpiryDate:       req.ExpiryDate,
		Model:            req.Model,
		Spot:             req.Spot,
		ForwardQuote:     req.ForwardQuote,
		RiskFreeRate:     req.RiskFreeRate,
		DividendYield:    req.DividendYield,
		DividendSchedule: req.DividendSchedule,
		DomesticRate:     req.DomesticRate,
		ForeignRate:      req.ForeignRate,
		ConvenienceYield: req.ConvenienceYield,
		StorageCostYield: req.StorageCostYield,
		Volatility:       req.Volatility,
		PricingDate:      req.PricingDate,
		ModelParams:      req.ModelParams,
	})
	if err != nil {
		if isClientError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logging.Error(c.Request.Context(), "Failed to price option", "symbol", req.Symbol, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// PayoffRequest 行权收益请求
type PayoffRequest struct {
	Underlying string  `json:"underlying" binding:"required"`
	OptionType string  `json:"option_type"`
	ExpiryType string  `json:"expiry_type"`
	Strike     float64 `json:"strike" binding:"required"`
	ExpiryDate string  `json:"expiry_date" binding:"required"`
	Spot       float64 `json:"spot"`
}

// Payoff 计算行权收益
func (h *InstrumentHandler) Payoff(c *gin.Context) {
	var req PayoffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payoff, err := h.query.Payoff(c.Request.Context(), application.PayoffQuery{
		Underlying: req.Underlying,
		OptionType: req.OptionType,
		ExpiryType: req.ExpiryType,
		Strike:     req.Strike,
		ExpiryDate: req.ExpiryDate,
		Spot:       req.Spot,
	})
	if err != nil {
		if isClientError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logging.Error(c.Request.Context(), "Failed to compute payoff", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"payoff": payoff})
}

// ListModels 列出允许的定价模型
func (h *InstrumentHandler) ListModels(c *gin.Context) {
	underlying := c.Query("underlying")
	if underlying == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "underlying is required"})
		return
	}

	models, err := h.query.ListModels(c.Request.Context(), underlying, c.Query("expiry_type"))
	if err != nil {
		if isClientError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logging.Error(c.Request.Context(), "Failed to list models", "underlying", underlying, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"models": models})
}

// GetLatestResult 获取最近一次定价结果
func (h *InstrumentHandler) GetLatestResult(c *gin.Context) {
	symbol := c.Query("symbol")
	if symbol == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "symbol is required"})
		return
	}

	result, err := h.query.GetLatestResult(c.Request.Context(), symbol)
	if err != nil {
		logging.Error(c.Request.Context(), "Failed to get pricing result", "symbol", symbol, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if result == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "pricing result not found"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetResultHistory 获取定价结果历史
func (h *InstrumentHandler) GetResultHistory(c *gin.Context) {
	symbol := c.Query("symbol")
	if symbol == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "symbol is required"})
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	results, err := h.query.GetResultHistory(c.Request.Context(), symbol, limit)
	if err != nil {
		logging.Error(c.Request.Context(), "Failed to get pricing history", "symbol", symbol, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": results})
}

// GetLatestQuote 获取标的最新行情
func (h *InstrumentHandler) GetLatestQuote(c *gin.Context) {
	symbol := c.Query("symbol")
	if symbol == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "symbol is required"})
		return
	}

	quote, err := h.query.GetLatestQuote(c.Request.Context(), symbol)
	if err != nil {
		logging.Error(c.Request.Context(), "Failed to get quote", "symbol", symbol, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if quote == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "quote not found"})
		return
	}

	c.JSON(http.StatusOK, quote)
}

// isClientError 区分请求本身的问题与服务端故障
func isClientError(err error) bool {
	for _, target := range []error{
		domain.ErrMalformedDate,
		domain.ErrInvalidMarketValue,
		domain.ErrNoDefaultModel,
		domain.ErrInvalidOptionType,
		domain.ErrInvalidExpiryType,
		domain.ErrInvalidStrike,
		domain.ErrUnderlyingMismatch,
		application.ErrUnknownUnderlying,
		pricing.ErrUnsupportedModel,
		pricing.ErrContractExpired,
		pricing.ErrBadModelParam,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
