package repository

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/skyfell/obslogbackend/models"
)

// FilterTypeRepository handles database operations for filter types
type FilterTypeRepository struct {
	DB *gorm.DB
}

// NewFilterTypeRepository creates a new instance of FilterTypeRepository
func NewFilterTypeRepository(db *gorm.DB) *FilterTypeRepository {
	return &FilterTypeRepository{DB: db}
}

// Create adds a new filter type after validating it
func (r *FilterTypeRepository) Create(ft *models.FilterType) error {
	if strings.TrimSpace(ft.Name) == "" {
		return fmt.Errorf("%w: filter type name must not be empty", ErrValidation)
	}
	taken, err := nameTaken(r.DB, &models.FilterType{}, ft.Name, 0)
	if err != nil {
		return err
	}
	if taken {
		return fmt.Errorf("filter type %q: %w", ft.Name, ErrDuplicateName)
	}
	if err := r.DB.Create(ft).Error; err != nil {
		return fmt.Errorf("failed to create filter type %s: %w", ft.Name, err)
	}
	return nil
}

// GetByID retrieves a filter type by its ID
func (r *FilterTypeRepository) GetByID(id uint) (*models.FilterType, error) {
	var ft models.FilterType
	err := r.DB.First(&ft, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get filter type by ID %d: %w", id, err)
	}
	return &ft, nil
}

// ListAll retrieves all filter types, ordered by priority then name, the
// same order the object stats report lays its columns out in
func (r *FilterTypeRepository) ListAll() ([]models.FilterType, error) {
	var fts []models.FilterType
	err := r.DB.Order("priority ASC, name ASC").Find(&fts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list filter types: %w", err)
	}
	return fts, nil
}

// Update updates an existing filter type. Renaming is rejected while
// filters still reference the old name.
func (r *FilterTypeRepository) Update(ft *models.FilterType) error {
	if strings.TrimSpace(ft.Name) == "" {
		return fmt.Errorf("%w: filter type name must not be empty", ErrValidation)
	}
	existing, err := r.GetByID(ft.ID)
	if err != nil {
		return err
	}
	if existing.Name != ft.Name {
		taken, err := nameTaken(r.DB, &models.FilterType{}, ft.Name, ft.ID)
		if err != nil {
			return err
		}
		if taken {
			return fmt.Errorf("filter type %q: %w", ft.Name, ErrDuplicateName)
		}
		inUse, err := referencedBy(r.DB, &models.Filter{}, "type", existing.Name)
		if err != nil {
			return err
		}
		if inUse {
			return fmt.Errorf("filter type %q: %w", existing.Name, ErrNameReferenced)
		}
	}

	result := r.DB.Model(&models.FilterType{ID: ft.ID}).
		Select("Name", "Priority").
		Updates(ft)
	if result.Error != nil {
		return fmt.Errorf("failed to update filter type ID %d: %w", ft.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a filter type by its ID
func (r *FilterTypeRepository) Delete(id uint) error {
	result := r.DB.Delete(&models.FilterType{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete filter type ID %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// FilterRepository handles database operations for filters
type FilterRepository struct {
	DB *gorm.DB
}

// NewFilterRepository creates a new instance of FilterRepository
func NewFilterRepository(db *gorm.DB) *FilterRepository {
	return &FilterRepository{DB: db}
}

func (r *FilterRepository) validate(f *models.Filter) error {
	if strings.TrimSpace(f.Name) == "" {
		return fmt.Errorf("%w: filter name must not be empty", ErrValidation)
	}
	if strings.TrimSpace(f.Type) == "" {
		return fmt.Errorf("%w: filter type must not be empty", ErrValidation)
	}
	var count int64
	if err := r.DB.Model(&models.FilterType{}).Where("name = ?", f.Type).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check filter type %q: %w", f.Type, err)
	}
	if count == 0 {
		return fmt.Errorf("filter type %q: %w", f.Type, ErrUnknownReference)
	}
	return nil
}

// Create adds a new filter; its type must reference an existing filter type
func (r *FilterRepository) Create(filter *models.Filter) error {
	if err := r.validate(filter); err != nil {
		return err
	}
	taken, err := nameTaken(r.DB, &models.Filter{}, filter.Name, 0)
	if err != nil {
		return err
	}
	if taken {
		return fmt.Errorf("filter %q: %w", filter.Name, ErrDuplicateName)
	}
	if err := r.DB.Create(filter).Error; err != nil {
		return fmt.Errorf("failed to create filter %s: %w", filter.Name, err)
	}
	return nil
}

// GetByID retrieves a filter by its ID
func (r *FilterRepository) GetByID(id uint) (*models.Filter, error) {
	var filter models.Filter
	err := r.DB.First(&filter, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get filter by ID %d: %w", id, err)
	}
	return &filter, nil
}

// ListAll retrieves all filters, ordered by name
func (r *FilterRepository) ListAll() ([]models.Filter, error) {
	var filters []models.Filter
	err := r.DB.Order("name ASC").Find(&filters).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list filters: %w", err)
	}
	return filters, nil
}

// Update updates an existing filter. Renaming is rejected while
// observations still reference the old name.
func (r *FilterRepository) Update(filter *models.Filter) error {
	if err := r.validate(filter); err != nil {
		return err
	}
	existing, err := r.GetByID(filter.ID)
	if err != nil {
		return err
	}
	if existing.Name != filter.Name {
		taken, err := nameTaken(r.DB, &models.Filter{}, filter.Name, filter.ID)
		if err != nil {
			return err
		}
		if taken {
			return fmt.Errorf("filter %q: %w", filter.Name, ErrDuplicateName)
		}
		inUse, err := referencedBy(r.DB, &models.Observation{}, "filter_name", existing.Name)
		if err != nil {
			return err
		}
		if inUse {
			return fmt.Errorf("filter %q: %w", existing.Name, ErrNameReferenced)
		}
	}

	result := r.DB.Model(&models.Filter{ID: filter.ID}).
		Select("Name", "Type").
		Updates(filter)
	if result.Error != nil {
		return fmt.Errorf("failed to update filter ID %d: %w", filter.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a filter by its ID
func (r *FilterRepository) Delete(id uint) error {
	result := r.DB.Delete(&models.Filter{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete filter ID %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
