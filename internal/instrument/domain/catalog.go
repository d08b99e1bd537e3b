package domain

// 定价模型标识符。对本层而言只是不透明字符串，
// 是否受支持由模型目录和定价引擎决定。
const (
	ModelBlackScholes      = "BlackScholes"
	ModelBinomial          = "Binomial"
	ModelMonteCarlo        = "MonteCarlo"
	ModelLongstaffSchwartz = "LongstaffSchwartz"
)

// ModelCatalog 模型目录
// 进程级只读配置，启动时注入，任何核心组件都不得修改。
type ModelCatalog interface {
	// DefaultModel 按 (标的, 合约族, 行权方式) 查默认模型，无条目时 ok 为 false。
	DefaultModel(u Underlying, d DerivativeType, e ExpiryType) (model string, ok bool)
	// PermittedModels 按 (标的, 行权方式) 查允许的模型有序集合，可能为空。
	PermittedModels(u Underlying, e ExpiryType) []string
}

// CatalogEntry 目录条目
type CatalogEntry struct {
	Underlying     Underlying
	DerivativeType DerivativeType
	ExpiryType     ExpiryType
	Model          string
	Default        bool
}

type defaultKey struct {
	underlying Underlying
	derivative DerivativeType
	expiry     ExpiryType
}

type permittedKey struct {
	underlying Underlying
	expiry     ExpiryType
}

// MemoryCatalog 内存模型目录，构造后只读。
type MemoryCatalog struct {
	defaults  map[defaultKey]string
	permitted map[permittedKey][]string
}

// NewMemoryCatalog 按条目顺序构建目录，允许集合保持插入顺序并去重。
func NewMemoryCatalog(entries []CatalogEntry) *MemoryCatalog {
	c := &MemoryCatalog{
		defaults:  make(map[defaultKey]string),
		permitted: make(map[permittedKey][]string),
	}
	for _, e := range entries {
		pk := permittedKey{underlying: e.Underlying, expiry: e.ExpiryType}
		if !contains(c.permitted[pk], e.Model) {
			c.permitted[pk] = append(c.permitted[pk], e.Model)
		}
		if e.Default {
			c.defaults[defaultKey{underlying: e.Underlying, derivative: e.DerivativeType, expiry: e.ExpiryType}] = e.Model
		}
	}
	return c
}

func (c *MemoryCatalog) DefaultModel(u Underlying, d DerivativeType, e ExpiryType) (string, bool) {
	m, ok := c.defaults[defaultKey{underlying: u, derivative: d, expiry: e}]
	return m, ok
}

func (c *MemoryCatalog) PermittedModels(u Underlying, e ExpiryType) []string {
	models := c.permitted[permittedKey{underlying: u, expiry: e}]
	out := make([]string, len(models))
	copy(out, models)
	return out
}

func contains(models []string, m string) bool {
	for _, v := range models {
		if v == m {
			return true
		}
	}
	return false
}

// DefaultCatalogEntries 内置目录：欧式默认 BlackScholes，
// 美式默认 Binomial，四类标的相同。
func DefaultCatalogEntries() []CatalogEntry {
	underlyings := []Underlying{UnderlyingStock, UnderlyingFutures, UnderlyingFX, UnderlyingCommodity}
	entries := make([]CatalogEntry, 0, len(underlyings)*5)
	for _, u := range underlyings {
		entries = append(entries,
			CatalogEntry{Underlying: u, DerivativeType: DerivativeVanillaOption, ExpiryType: ExpiryTypeEuropean, Model: ModelBlackScholes, Default: true},
			CatalogEntry{Underlying: u, DerivativeType: DerivativeVanillaOption, ExpiryType: ExpiryTypeEuropean, Model: ModelBinomial},
			CatalogEntry{Underlying: u, DerivativeType: DerivativeVanillaOption, ExpiryType: ExpiryTypeEuropean, Model: ModelMonteCarlo},
			CatalogEntry{Underlying: u, DerivativeType: DerivativeVanillaOption, ExpiryType: ExpiryTypeAmerican, Model: ModelBinomial, Default: true},
			CatalogEntry{Underlying: u, DerivativeType: DerivativeVanillaOption, ExpiryType: ExpiryTypeAmerican, Model: ModelLongstaffSchwartz},
		)
	}
	return entries
}

// DefaultCatalog 内置目录的 MemoryCatalog 视图
func DefaultCatalog() *MemoryCatalog {
	return NewMemoryCatalog(DefaultCatalogEntries())
}
