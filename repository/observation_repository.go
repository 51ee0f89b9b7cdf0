package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/skyfell/obslogbackend/models"
)

// ObservationRepository handles database operations for observations
type ObservationRepository struct {
	DB *gorm.DB
}

// NewObservationRepository creates a new instance of ObservationRepository
func NewObservationRepository(db *gorm.DB) *ObservationRepository {
	return &ObservationRepository{DB: db}
}

// validate checks field constraints and that every name reference points
// at an existing entity, then recomputes the derived total exposure.
// TotalExposure is never trusted from the caller.
func (r *ObservationRepository) validate(obs *models.Observation) error {
	if obs.ImageCount <= 0 {
		return fmt.Errorf("%w: image_count must be positive", ErrValidation)
	}
	if obs.ExposureLength <= 0 {
		return fmt.Errorf("%w: exposure_length must be positive", ErrValidation)
	}

	refs := []struct {
		model interface{}
		name  string
		what  string
	}{
		{&models.Session{}, obs.SessionName, "session"},
		{&models.CelestialObject{}, obs.ObjectName, "object"},
		{&models.Camera{}, obs.CameraName, "camera"},
		{&models.Telescope{}, obs.TelescopeName, "telescope"},
		{&models.Filter{}, obs.FilterName, "filter"},
	}
	for _, ref := range refs {
		if ref.name == "" {
			return fmt.Errorf("%w: %s name must not be empty", ErrValidation, ref.what)
		}
		var count int64
		if err := r.DB.Model(ref.model).Where("name = ?", ref.name).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check %s %q: %w", ref.what, ref.name, err)
		}
		if count == 0 {
			return fmt.Errorf("%s %q: %w", ref.what, ref.name, ErrUnknownReference)
		}
	}

	obs.TotalExposure = obs.ImageCount * obs.ExposureLength
	return nil
}

// Create adds a new observation, recomputing its total exposure
func (r *ObservationRepository) Create(obs *models.Observation) error {
	if err := r.validate(obs); err != nil {
		return err
	}
	if err := r.DB.Create(obs).Error; err != nil {
		return fmt.Errorf("failed to create observation: %w", err)
	}
	return nil
}

// GetByID retrieves an observation by its ID
func (r *ObservationRepository) GetByID(id uint) (*models.Observation, error) {
	var obs models.Observation
	err := r.DB.First(&obs, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get observation by ID %d: %w", id, err)
	}
	return &obs, nil
}

// ListAll retrieves all observations in insertion order
func (r *ObservationRepository) ListAll() ([]models.Observation, error) {
	var observations []models.Observation
	err := r.DB.Order("id ASC").Find(&observations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list observations: %w", err)
	}
	return observations, nil
}

// Update updates an existing observation, recomputing its total exposure
func (r *ObservationRepository) Update(obs *models.Observation) error {
	if err := r.validate(obs); err != nil {
		return err
	}
	result := r.DB.Model(&models.Observation{ID: obs.ID}).
		Select("SessionName", "ObjectName", "CameraName", "TelescopeName",
			"FilterName", "ImageCount", "ExposureLength", "TotalExposure", "Comments").
		Updates(obs)
	if result.Error != nil {
		return fmt.Errorf("failed to update observation ID %d: %w", obs.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes an observation by its ID
func (r *ObservationRepository) Delete(id uint) error {
	result := r.DB.Delete(&models.Observation{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete observation ID %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
