package repository

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned by the FindOrFail lookups.
var ErrNotFound = gorm.ErrRecordNotFound

// IsDuplicateKey reports whether err came from a unique index violation.
func IsDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func byID(db *gorm.DB) *gorm.DB {
	return db.Order("products.id")
}
