package specification

import "gorm.io/gorm"

// CatalogOrder is the stable snapshot order every catalog read uses.
type CatalogOrder struct{}

func (s CatalogOrder) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("created_at ASC").Order("id ASC")
}

// ByUsername filters admin accounts.
type ByUsername struct {
	Username string
}

func (s ByUsername) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("username = ?", s.Username)
}
