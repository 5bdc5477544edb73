package repository

import "gorm.io/gorm"

// WhereIf applies the predicate only when cond holds, leaving the query
// untouched otherwise. Optional filter clauses fold onto a query root with
// repeated Scopes(WhereIf(...)) calls and compose with logical AND.
func WhereIf(cond bool, query interface{}, args ...interface{}) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if cond {
			return db.Where(query, args...)
		}
		return db
	}
}
