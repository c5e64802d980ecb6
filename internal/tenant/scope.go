package tenant

import "gorm.io/gorm"

// Scope restricts a query to one company's rows.
func Scope(companyID int64) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("company_id = ?", companyID)
	}
}

// ActiveScope restricts a query to one company's rows with is_active set.
func ActiveScope(companyID int64) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("company_id = ? AND is_active = ?", companyID, true)
	}
}
