package repository

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/skyfell/obslogbackend/models"
)

// CameraRepository handles database operations for cameras
type CameraRepository struct {
	DB *gorm.DB
}

// NewCameraRepository creates a new instance of CameraRepository
func NewCameraRepository(db *gorm.DB) *CameraRepository {
	return &CameraRepository{DB: db}
}

func validateCamera(c *models.Camera) error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("%w: camera name must not be empty", ErrValidation)
	}
	if strings.TrimSpace(c.Sensor) == "" {
		return fmt.Errorf("%w: camera sensor must not be empty", ErrValidation)
	}
	if c.PixelSize <= 0 {
		return fmt.Errorf("%w: pixel_size must be positive", ErrValidation)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: width and height must be positive", ErrValidation)
	}
	return nil
}

// Create adds a new camera after validating it
func (r *CameraRepository) Create(camera *models.Camera) error {
	if err := validateCamera(camera); err != nil {
		return err
	}
	taken, err := nameTaken(r.DB, &models.Camera{}, camera.Name, 0)
	if err != nil {
		return err
	}
	if taken {
		return fmt.Errorf("camera %q: %w", camera.Name, ErrDuplicateName)
	}
	if err := r.DB.Create(camera).Error; err != nil {
		return fmt.Errorf("failed to create camera %s: %w", camera.Name, err)
	}
	return nil
}

// GetByID retrieves a camera by its ID
func (r *CameraRepository) GetByID(id uint) (*models.Camera, error) {
	var camera models.Camera
	err := r.DB.First(&camera, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get camera by ID %d: %w", id, err)
	}
	return &camera, nil
}

// ListAll retrieves all cameras, ordered by name
func (r *CameraRepository) ListAll() ([]models.Camera, error) {
	var cameras []models.Camera
	err := r.DB.Order("name ASC").Find(&cameras).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list cameras: %w", err)
	}
	return cameras, nil
}

// Update updates an existing camera. Renaming is rejected while
// observations still reference the old name.
func (r *CameraRepository) Update(camera *models.Camera) error {
	if err := validateCamera(camera); err != nil {
		return err
	}
	existing, err := r.GetByID(camera.ID)
	if err != nil {
		return err
	}
	if existing.Name != camera.Name {
		taken, err := nameTaken(r.DB, &models.Camera{}, camera.Name, camera.ID)
		if err != nil {
			return err
		}
		if taken {
			return fmt.Errorf("camera %q: %w", camera.Name, ErrDuplicateName)
		}
		inUse, err := referencedBy(r.DB, &models.Observation{}, "camera_name", existing.Name)
		if err != nil {
			return err
		}
		if inUse {
			return fmt.Errorf("camera %q: %w", existing.Name, ErrNameReferenced)
		}
	}

	result := r.DB.Model(&models.Camera{ID: camera.ID}).
		Select("Name", "Sensor", "PixelSize", "Width", "Height").
		Updates(camera)
	if result.Error != nil {
		return fmt.Errorf("failed to update camera ID %d: %w", camera.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a camera by its ID
func (r *CameraRepository) Delete(id uint) error {
	result := r.DB.Delete(&models.Camera{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete camera ID %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
