package store

import (
	"context"
	"strings"

	"ndiscare-backend/internal/models"
	"ndiscare-backend/internal/search"

	"gorm.io/gorm"
)

// GormWorkerStore executes composed search predicates against MySQL.
type GormWorkerStore struct {
	db *gorm.DB
}

func NewGormWorkerStore(db *gorm.DB) *GormWorkerStore {
	return &GormWorkerStore{db: db}
}

// apply translates the predicate onto a gorm query. Simple conditions
// chain as WHERE ... AND ..., each OR group is parenthesized as a unit
// so its alternatives never leak across dimensions.
func (s *GormWorkerStore) apply(ctx context.Context, p search.Predicate) *gorm.DB {
	q := s.db.WithContext(ctx).Model(&models.Worker{})
	for _, c := range p.Conds {
		q = q.Where(c.Expr, c.Args...)
	}
	for _, group := range p.OrGroups {
		exprs := make([]string, 0, len(group))
		args := make([]interface{}, 0, len(group))
		for _, c := range group {
			exprs = append(exprs, c.Expr)
			args = append(args, c.Args...)
		}
		q = q.Where("("+strings.Join(exprs, " OR ")+")", args...)
	}
	return q
}

func (s *GormWorkerStore) Count(ctx context.Context, p search.Predicate) (int64, error) {
	var total int64
	err := s.apply(ctx, p).Count(&total).Error
	return total, err
}

func (s *GormWorkerStore) FindPage(ctx context.Context, p search.Predicate, order string, offset, limit int) ([]models.Worker, error) {
	var workers []models.Worker
	err := s.apply(ctx, p).
		Preload("Services").
		Order(order).
		Offset(offset).
		Limit(limit).
		Find(&workers).Error
	return workers, err
}

// FindAll fetches every matching row. Only used by the distance path,
// where the bounding box has already narrowed the candidate set.
func (s *GormWorkerStore) FindAll(ctx context.Context, p search.Predicate, order string) ([]models.Worker, error) {
	var workers []models.Worker
	err := s.apply(ctx, p).
		Preload("Services").
		Order(order).
		Find(&workers).Error
	return workers, err
}
