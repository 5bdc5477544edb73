// Package repository provides the generic storage access layer: uniform
// CRUD over a single entity type with no business rules.
package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository is a thin passthrough to storage for one entity type.
// GetAll returns a query root the caller composes predicates onto.
type Repository[T any] interface {
	GetAll() *gorm.DB
	Create(e *T) error
	Update(e *T) error
	Delete(e *T) error
	Attach(e *T) error
}

type GormRepository[T any] struct {
	db *gorm.DB
}

func NewGormRepository[T any](db *gorm.DB) *GormRepository[T] {
	return &GormRepository[T]{db: db}
}

func (r *GormRepository[T]) GetAll() *gorm.DB {
	return r.db.Model(new(T))
}

// Create inserts the entity only. Association writes are omitted so that
// related rows already loaded from storage are referenced by ID, never
// re-inserted.
func (r *GormRepository[T]) Create(e *T) error {
	return r.db.Omit(clause.Associations).Create(e).Error
}

func (r *GormRepository[T]) Update(e *T) error {
	return r.db.Omit(clause.Associations).Save(e).Error
}

func (r *GormRepository[T]) Delete(e *T) error {
	return r.db.Delete(e).Error
}

// Attach marks an already-loaded entity as existing. GORM does not track
// loaded entities the way an ORM session would, and Create already omits
// association writes, so there is nothing to record here.
func (r *GormRepository[T]) Attach(e *T) error {
	return nil
}
