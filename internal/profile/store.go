// Package profile provides read-only access to the web application's profile
// tables. Absence of any row is not an error.
package profile

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Store is the read contract the relay depends on.
type Store interface {
	Identity(ctx context.Context, userID string) (*Identity, error)
	CurrentState(ctx context.Context, userID string) (*CurrentState, error)
	SkillNames(ctx context.Context, userID string) ([]string, error)
}

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Identity(ctx context.Context, userID string) (*Identity, error) {
	var p Identity
	if err := s.db.WithContext(ctx).
		Where("id = ?", userID).
		First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (s *GormStore) CurrentState(ctx context.Context, userID string) (*CurrentState, error) {
	var st CurrentState
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&st).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &st, nil
}

func (s *GormStore) SkillNames(ctx context.Context, userID string) ([]string, error) {
	var names []string
	if err := s.db.WithContext(ctx).
		Model(&Skill{}).
		Where("user_id = ?", userID).
		Order("id ASC").
		Pluck("name", &names).Error; err != nil {
		return nil, err
	}
	return names, nil
}
