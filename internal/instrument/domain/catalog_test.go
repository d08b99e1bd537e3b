package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogDefaults(t *testing.T) {
	c := DefaultCatalog()

	for _, u := range []Underlying{UnderlyingStock, UnderlyingFutures, UnderlyingFX, UnderlyingCommodity} {
		model, ok := c.DefaultModel(u, DerivativeVanillaOption, ExpiryTypeEuropean)
		require.True(t, ok, "no default for %s European", u)
		assert.Equal(t, ModelBlackScholes, model)

		model, ok = c.DefaultModel(u, DerivativeVanillaOption, ExpiryTypeAmerican)
		require.True(t, ok, "no default for %s American", u)
		assert.Equal(t, ModelBinomial, model)
	}
}

func TestDefaultCatalogPermitted(t *testing.T) {
	c := DefaultCatalog()

	assert.Equal(t,
		[]string{ModelBlackScholes, ModelBinomial, ModelMonteCarlo},
		c.PermittedModels(UnderlyingStock, ExpiryTypeEuropean))
	assert.Equal(t,
		[]string{ModelBinomial, ModelLongstaffSchwartz},
		c.PermittedModels(UnderlyingStock, ExpiryTypeAmerican))
}

func TestMemoryCatalogDedupesAndPreservesOrder(t *testing.T) {
	c := NewMemoryCatalog([]CatalogEntry{
		{Underlying: UnderlyingFX, DerivativeType: DerivativeVanillaOption, ExpiryType: ExpiryTypeEuropean, Model: ModelMonteCarlo},
		{Underlying: UnderlyingFX, DerivativeType: DerivativeVanillaOption, ExpiryType: ExpiryTypeEuropean, Model: ModelBlackScholes, Default: true},
		{Underlying: UnderlyingFX, DerivativeType: DerivativeVanillaOption, ExpiryType: ExpiryTypeEuropean, Model: ModelMonteCarlo},
	})

	assert.Equal(t, []string{ModelMonteCarlo, ModelBlackScholes}, c.PermittedModels(UnderlyingFX, ExpiryTypeEuropean))
}

func TestMemoryCatalogMissingEntries(t *testing.T) {
	c := NewMemoryCatalog(nil)

	_, ok := c.DefaultModel(UnderlyingStock, DerivativeVanillaOption, ExpiryTypeEuropean)
	assert.False(t, ok)
	assert.Empty(t, c.PermittedModels(UnderlyingStock, ExpiryTypeEuropean))
}

func TestPermittedModelsReturnsCopy(t *testing.T) {
	c := DefaultCatalog()

	models := c.PermittedModels(UnderlyingStock, ExpiryTypeEuropean)
	models[0] = "mutated"
	assert.Equal(t, ModelBlackScholes, c.PermittedModels(UnderlyingStock, ExpiryTypeEuropean)[0])
}
