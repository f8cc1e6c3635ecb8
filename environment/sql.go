package environment

import (
	"context"
	"errors"

	"github.com/hairizuanbinnoorazman/qa-dashboard/logger"
	"gorm.io/gorm"
)

// SQLStore implements the Store interface using GORM. It runs on the
// sqlite driver by default and mysql when configured.
type SQLStore struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewSQLStore creates a new GORM-backed environment store.
func NewSQLStore(db *gorm.DB, log logger.Logger) *SQLStore {
	return &SQLStore{
		db:     db,
		logger: log,
	}
}

// Create creates a new environment in the database. Duplicate names are
// rejected before any write.
func (s *SQLStore) Create(ctx context.Context, env *Environment) error {
	if env.Status == "" {
		env.Status = StatusMaintenance
	}
	if err := env.Validate(); err != nil {
		return err
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&Environment{}).
		Where("name = ?", env.Name).
		Count(&count).Error; err != nil {
		s.logger.Error(ctx, "failed to check environment name", map[string]interface{}{
			"error": err.Error(),
			"name":  env.Name,
		})
		return err
	}
	if count > 0 {
		return ErrDuplicateEnvironmentName
	}

	if err := s.db.WithContext(ctx).Create(env).Error; err != nil {
		s.logger.Error(ctx, "failed to create environment", map[string]interface{}{
			"error": err.Error(),
			"name":  env.Name,
		})
		return err
	}

	s.logger.Info(ctx, "environment created", map[string]interface{}{
		"environment_id": env.ID.String(),
		"name":           env.Name,
	})
	return nil
}

// GetByName retrieves an environment by its unique name.
func (s *SQLStore) GetByName(ctx context.Context, name string) (*Environment, error) {
	var env Environment
	err := s.db.WithContext(ctx).
		Where("name = ?", name).
		First(&env).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEnvironmentNotFound
		}
		s.logger.Error(ctx, "failed to get environment by name", map[string]interface{}{
			"error": err.Error(),
			"name":  name,
		})
		return nil, err
	}

	return &env, nil
}

// List retrieves all environments, most recently created first.
func (s *SQLStore) List(ctx context.Context) ([]*Environment, error) {
	var environments []*Environment
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&environments).Error

	if err != nil {
		s.logger.Error(ctx, "failed to list environments", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	return environments, nil
}

// Update applies the given setters to the named environment.
func (s *SQLStore) Update(ctx context.Context, name string, setters ...UpdateSetter) error {
	env, err := s.GetByName(ctx, name)
	if err != nil {
		return err
	}

	for _, setter := range setters {
		if err := setter(env); err != nil {
			return err
		}
	}

	if err := s.db.WithContext(ctx).Save(env).Error; err != nil {
		s.logger.Error(ctx, "failed to update environment", map[string]interface{}{
			"error": err.Error(),
			"name":  name,
		})
		return err
	}

	s.logger.Info(ctx, "environment updated", map[string]interface{}{
		"environment_id": env.ID.String(),
		"name":           name,
	})
	return nil
}

// Delete deletes an environment by name.
func (s *SQLStore) Delete(ctx context.Context, name string) error {
	result := s.db.WithContext(ctx).
		Where("name = ?", name).
		Delete(&Environment{})

	if result.Error != nil {
		s.logger.Error(ctx, "failed to delete environment", map[string]interface{}{
			"error": result.Error.Error(),
			"name":  name,
		})
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrEnvironmentNotFound
	}

	s.logger.Info(ctx, "environment deleted", map[string]interface{}{
		"name": name,
	})
	return nil
}
