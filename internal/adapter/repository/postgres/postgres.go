package postgres

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// translate maps gorm's not-found onto the domain sentinel so callers never
// import gorm.
func translate(err, notFound error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return err
}

// forUpdate adds a row lock where the dialect supports one. sqlite (used by
// the tests) has no row locks; its transactions serialize writers anyway.
func forUpdate(db *gorm.DB) *gorm.DB {
	if db.Dialector.Name() == "sqlite" {
		return db
	}
	return db.Clauses(clause.Locking{Strength: "UPDATE"})
}
