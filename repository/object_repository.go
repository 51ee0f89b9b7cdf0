package repository

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/facette/natsort"
	"gorm.io/gorm"

	"github.com/skyfell/obslogbackend/models"
)

// ObjectRepository handles database operations for celestial objects
type ObjectRepository struct {
	DB *gorm.DB
}

// NewObjectRepository creates a new instance of ObjectRepository
func NewObjectRepository(db *gorm.DB) *ObjectRepository {
	return &ObjectRepository{DB: db}
}

func validateObject(obj *models.CelestialObject) error {
	if strings.TrimSpace(obj.Name) == "" {
		return fmt.Errorf("%w: object name must not be empty", ErrValidation)
	}
	if (obj.RAHours == nil) != (obj.DecDegrees == nil) {
		return fmt.Errorf("%w: ra_hours and dec_degrees must be set together", ErrValidation)
	}
	if obj.RAHours != nil {
		if *obj.RAHours < 0 || *obj.RAHours >= 24 {
			return fmt.Errorf("%w: ra_hours %v out of range [0,24)", ErrValidation, *obj.RAHours)
		}
		if *obj.DecDegrees < -90 || *obj.DecDegrees > 90 {
			return fmt.Errorf("%w: dec_degrees %v out of range [-90,90]", ErrValidation, *obj.DecDegrees)
		}
	}
	return nil
}

// nameTaken reports whether another row of table already uses name,
// excluding the row with excludeID (0 to exclude nothing).
func nameTaken(db *gorm.DB, model interface{}, name string, excludeID uint) (bool, error) {
	var count int64
	q := db.Model(model).Where("name = ?", name)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check name uniqueness for %q: %w", name, err)
	}
	return count > 0, nil
}

// referencedBy reports whether any row of table has column = name.
func referencedBy(db *gorm.DB, model interface{}, column, name string) (bool, error) {
	var count int64
	if err := db.Model(model).Where(column+" = ?", name).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check references to %q: %w", name, err)
	}
	return count > 0, nil
}

// Create adds a new celestial object after validating it
func (r *ObjectRepository) Create(obj *models.CelestialObject) error {
	if err := validateObject(obj); err != nil {
		return err
	}
	taken, err := nameTaken(r.DB, &models.CelestialObject{}, obj.Name, 0)
	if err != nil {
		return err
	}
	if taken {
		return fmt.Errorf("object %q: %w", obj.Name, ErrDuplicateName)
	}
	if err := r.DB.Create(obj).Error; err != nil {
		return fmt.Errorf("failed to create object %s: %w", obj.Name, err)
	}
	return nil
}

// GetByID retrieves a celestial object by its ID
func (r *ObjectRepository) GetByID(id uint) (*models.CelestialObject, error) {
	var obj models.CelestialObject
	err := r.DB.First(&obj, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get object by ID %d: %w", id, err)
	}
	return &obj, nil
}

// ListAll retrieves all celestial objects in natural name order, so that
// catalog designations like M1, M2, M10 come out in numeric order.
func (r *ObjectRepository) ListAll() ([]models.CelestialObject, error) {
	var objects []models.CelestialObject
	if err := r.DB.Find(&objects).Error; err != nil {
		return nil, fmt.Errorf("failed to list objects: %w", err)
	}
	sort.SliceStable(objects, func(i, j int) bool {
		return natsort.Compare(objects[i].Name, objects[j].Name)
	})
	return objects, nil
}

// Update updates an existing celestial object. Renaming is rejected while
// observations still reference the old name.
func (r *ObjectRepository) Update(obj *models.CelestialObject) error {
	if err := validateObject(obj); err != nil {
		return err
	}
	existing, err := r.GetByID(obj.ID)
	if err != nil {
		return err
	}
	if existing.Name != obj.Name {
		taken, err := nameTaken(r.DB, &models.CelestialObject{}, obj.Name, obj.ID)
		if err != nil {
			return err
		}
		if taken {
			return fmt.Errorf("object %q: %w", obj.Name, ErrDuplicateName)
		}
		inUse, err := referencedBy(r.DB, &models.Observation{}, "object_name", existing.Name)
		if err != nil {
			return err
		}
		if inUse {
			return fmt.Errorf("object %q: %w", existing.Name, ErrNameReferenced)
		}
	}

	result := r.DB.Model(&models.CelestialObject{ID: obj.ID}).
		Select("Name", "RAHours", "DecDegrees").
		Updates(obj)
	if result.Error != nil {
		return fmt.Errorf("failed to update object ID %d: %w", obj.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a celestial object by its ID
func (r *ObjectRepository) Delete(id uint) error {
	result := r.DB.Delete(&models.CelestialObject{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete object ID %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
