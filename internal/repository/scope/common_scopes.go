package scope

import "gorm.io/gorm"

func OrderByCreatedDesc(db *gorm.DB) *gorm.DB {
	return db.Order("aangemaakt_op DESC").Order("id DESC")
}

func OrderByCreatedAsc(db *gorm.DB) *gorm.DB {
	return db.Order("aangemaakt_op ASC").Order("id ASC")
}

func OrderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}
