package repository

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/skyfell/obslogbackend/models"
)

// SessionRepository handles database operations for observing sessions
type SessionRepository struct {
	DB *gorm.DB
}

// NewSessionRepository creates a new instance of SessionRepository
func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{DB: db}
}

func validateSession(s *models.Session) error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("%w: session name must not be empty", ErrValidation)
	}
	if _, err := time.Parse("2006-01-02", s.StartDate); err != nil {
		return fmt.Errorf("%w: start_date %q is not a YYYY-MM-DD date", ErrValidation, s.StartDate)
	}
	if s.MoonIllumination != nil && (*s.MoonIllumination < 0 || *s.MoonIllumination > 100) {
		return fmt.Errorf("%w: moon_illumination %v out of range [0,100]", ErrValidation, *s.MoonIllumination)
	}
	return nil
}

// Create adds a new session. Moon fields are expected to be filled in by
// the caller from the start date before the write.
func (r *SessionRepository) Create(session *models.Session) error {
	if err := validateSession(session); err != nil {
		return err
	}
	taken, err := nameTaken(r.DB, &models.Session{}, session.Name, 0)
	if err != nil {
		return err
	}
	if taken {
		return fmt.Errorf("session %q: %w", session.Name, ErrDuplicateName)
	}
	if err := r.DB.Create(session).Error; err != nil {
		return fmt.Errorf("failed to create session %s: %w", session.Name, err)
	}
	return nil
}

// GetByID retrieves a session by its ID
func (r *SessionRepository) GetByID(id uint) (*models.Session, error) {
	var session models.Session
	err := r.DB.First(&session, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get session by ID %d: %w", id, err)
	}
	return &session, nil
}

// ListAll retrieves all sessions, ordered by start date then id
func (r *SessionRepository) ListAll() ([]models.Session, error) {
	var sessions []models.Session
	err := r.DB.Order("start_date ASC, id ASC").Find(&sessions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return sessions, nil
}

// Update updates an existing session. Renaming is rejected while
// observations still reference the old name.
func (r *SessionRepository) Update(session *models.Session) error {
	if err := validateSession(session); err != nil {
		return err
	}
	existing, err := r.GetByID(session.ID)
	if err != nil {
		return err
	}
	if existing.Name != session.Name {
		taken, err := nameTaken(r.DB, &models.Session{}, session.Name, session.ID)
		if err != nil {
			return err
		}
		if taken {
			return fmt.Errorf("session %q: %w", session.Name, ErrDuplicateName)
		}
		inUse, err := referencedBy(r.DB, &models.Observation{}, "session_name", existing.Name)
		if err != nil {
			return err
		}
		if inUse {
			return fmt.Errorf("session %q: %w", existing.Name, ErrNameReferenced)
		}
	}

	result := r.DB.Model(&models.Session{ID: session.ID}).
		Select("Name", "StartDate", "Comments", "MoonIllumination", "MoonRA", "MoonDec").
		Updates(session)
	if result.Error != nil {
		return fmt.Errorf("failed to update session ID %d: %w", session.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a session by its ID
func (r *SessionRepository) Delete(id uint) error {
	result := r.DB.Delete(&models.Session{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete session ID %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
