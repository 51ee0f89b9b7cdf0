package repository

import (
	"github.com/skyfell/obslogbackend/models"
)

// ObjectRepositoryInterface defines the methods for celestial object data operations
type ObjectRepositoryInterface interface {
	Create(obj *models.CelestialObject) error
	GetByID(id uint) (*models.CelestialObject, error)
	ListAll() ([]models.CelestialObject, error)
	Update(obj *models.CelestialObject) error
	Delete(id uint) error
}

// SessionRepositoryInterface defines the methods for session data operations
type SessionRepositoryInterface interface {
	Create(session *models.Session) error
	GetByID(id uint) (*models.Session, error)
	ListAll() ([]models.Session, error)
	Update(session *models.Session) error
	Delete(id uint) error
}

// CameraRepositoryInterface defines the methods for camera data operations
type CameraRepositoryInterface interface {
	Create(camera *models.Camera) error
	GetByID(id uint) (*models.Camera, error)
	ListAll() ([]models.Camera, error)
	Update(camera *models.Camera) error
	Delete(id uint) error
}

// TelescopeRepositoryInterface defines the methods for telescope data operations
type TelescopeRepositoryInterface interface {
	Create(telescope *models.Telescope) error
	GetByID(id uint) (*models.Telescope, error)
	ListAll() ([]models.Telescope, error)
	Update(telescope *models.Telescope) error
	Delete(id uint) error
}

// FilterTypeRepositoryInterface defines the methods for filter type data operations
type FilterTypeRepositoryInterface interface {
	Create(ft *models.FilterType) error
	GetByID(id uint) (*models.FilterType, error)
	ListAll() ([]models.FilterType, error)
	Update(ft *models.FilterType) error
	Delete(id uint) error
}

// FilterRepositoryInterface defines the methods for filter data operations
type FilterRepositoryInterface interface {
	Create(filter *models.Filter) error
	GetByID(id uint) (*models.Filter, error)
	ListAll() ([]models.Filter, error)
	Update(filter *models.Filter) error
	Delete(id uint) error
}

// ObservationRepositoryInterface defines the methods for observation data operations
type ObservationRepositoryInterface interface {
	Create(obs *models.Observation) error
	GetByID(id uint) (*models.Observation, error)
	ListAll() ([]models.Observation, error)
	Update(obs *models.Observation) error
	Delete(id uint) error
}

// StatsRepositoryInterface defines the read-only aggregate report queries
type StatsRepositoryInterface interface {
	ObjectStats() ([]ObjectFilterExposure, error)
	MonthlyStats() ([]MonthlyExposure, error)
}
