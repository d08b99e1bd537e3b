package mysql

import (
	"context"

	"github.com/openquant/derivativepricing/internal/instrument/domain"
	"gorm.io/gorm"
)

// SeedDefaultCatalog 目录表为空时写入内置条目
func SeedDefaultCatalog(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.WithContext(ctx).Model(&CatalogEntryModel{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	models := make([]*CatalogEntryModel, 0)
	for _, e := range domain.DefaultCatalogEntries() {
		models = append(models, toCatalogEntryModel(e))
	}
	return db.WithContext(ctx).Create(&models).Error
}

// LoadCatalog 从目录表构建内存目录，启动后只读。
func LoadCatalog(ctx context.Context, db *gorm.DB) (*domain.MemoryCatalog, error) {
	var models []*CatalogEntryModel
	if err := db.WithContext(ctx).Order("id ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	entries := make([]domain.CatalogEntry, 0, len(models))
	for _, m := range models {
		entries = append(entries, toCatalogEntry(m))
	}
	return domain.NewMemoryCatalog(entries), nil
}
