package repository

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/skyfell/obslogbackend/models"
)

// TelescopeRepository handles database operations for telescopes
type TelescopeRepository struct {
	DB *gorm.DB
}

// NewTelescopeRepository creates a new instance of TelescopeRepository
func NewTelescopeRepository(db *gorm.DB) *TelescopeRepository {
	return &TelescopeRepository{DB: db}
}

func validateTelescope(t *models.Telescope) error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("%w: telescope name must not be empty", ErrValidation)
	}
	if t.Aperture <= 0 {
		return fmt.Errorf("%w: aperture must be positive", ErrValidation)
	}
	if t.FRatio <= 0 {
		return fmt.Errorf("%w: f_ratio must be positive", ErrValidation)
	}
	if t.FocalLength <= 0 {
		return fmt.Errorf("%w: focal_length must be positive", ErrValidation)
	}
	return nil
}

// Create adds a new telescope after validating it
func (r *TelescopeRepository) Create(telescope *models.Telescope) error {
	if err := validateTelescope(telescope); err != nil {
		return err
	}
	taken, err := nameTaken(r.DB, &models.Telescope{}, telescope.Name, 0)
	if err != nil {
		return err
	}
	if taken {
		return fmt.Errorf("telescope %q: %w", telescope.Name, ErrDuplicateName)
	}
	if err := r.DB.Create(telescope).Error; err != nil {
		return fmt.Errorf("failed to create telescope %s: %w", telescope.Name, err)
	}
	return nil
}

// GetByID retrieves a telescope by its ID
func (r *TelescopeRepository) GetByID(id uint) (*models.Telescope, error) {
	var telescope models.Telescope
	err := r.DB.First(&telescope, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get telescope by ID %d: %w", id, err)
	}
	return &telescope, nil
}

// ListAll retrieves all telescopes, ordered by name
func (r *TelescopeRepository) ListAll() ([]models.Telescope, error) {
	var telescopes []models.Telescope
	err := r.DB.Order("name ASC").Find(&telescopes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list telescopes: %w", err)
	}
	return telescopes, nil
}

// Update updates an existing telescope. Renaming is rejected while
// observations still reference the old name.
func (r *TelescopeRepository) Update(telescope *models.Telescope) error {
	if err := validateTelescope(telescope); err != nil {
		return err
	}
	existing, err := r.GetByID(telescope.ID)
	if err != nil {
		return err
	}
	if existing.Name != telescope.Name {
		taken, err := nameTaken(r.DB, &models.Telescope{}, telescope.Name, telescope.ID)
		if err != nil {
			return err
		}
		if taken {
			return fmt.Errorf("telescope %q: %w", telescope.Name, ErrDuplicateName)
		}
		inUse, err := referencedBy(r.DB, &models.Observation{}, "telescope_name", existing.Name)
		if err != nil {
			return err
		}
		if inUse {
			return fmt.Errorf("telescope %q: %w", existing.Name, ErrNameReferenced)
		}
	}

	result := r.DB.Model(&models.Telescope{ID: telescope.ID}).
		Select("Name", "Aperture", "FRatio", "FocalLength").
		Updates(telescope)
	if result.Error != nil {
		return fmt.Errorf("failed to update telescope ID %d: %w", telescope.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a telescope by its ID
func (r *TelescopeRepository) Delete(id uint) error {
	result := r.DB.Delete(&models.Telescope{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete telescope ID %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
