package repository

import (
	"errors"
	"log"
	"time"

	"github.com/bepp-pmpa/sigpen-backend/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProfileRepository interface {
	CreateWithRole(p *domain.Profile, role string) error
	FindByEmail(email string) (*domain.Profile, error)
	FindByID(id string) (*domain.Profile, error)
	List() ([]domain.Profile, error)
	SetUltimoLogin(id string, quando time.Time) error
	RolesByUserID(id string) ([]domain.UserRole, error)
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// CreateWithRole inserts the profile and its user_roles row in one
// transaction so a provisioned user never ends up role-less.
func (r *profileRepository) CreateWithRole(p *domain.Profile, role string) error {
	if p == nil {
		return errors.New("nil profile")
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(p).Error; err != nil {
			return err
		}
		return tx.Create(&domain.UserRole{
			ID:     uuid.NewString(),
			UserID: p.ID,
			Role:   role,
		}).Error
	})
}

func (r *profileRepository) FindByEmail(email string) (*domain.Profile, error) {
	p := &domain.Profile{}

	if err := r.db.First(p, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		log.Printf("find profile by email error: %v", err)
		return nil, errors.New("failed to find profile by email")
	}

	return p, nil
}

func (r *profileRepository) FindByID(id string) (*domain.Profile, error) {
	p := &domain.Profile{}

	if err := r.db.First(p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		log.Printf("find profile by id error: %v", err)
		return nil, errors.New("failed to find profile by ID")
	}

	return p, nil
}

func (r *profileRepository) List() ([]domain.Profile, error) {
	var out []domain.Profile
	err := r.db.
		Preload("Roles").
		Order("created_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *profileRepository) SetUltimoLogin(id string, quando time.Time) error {
	return r.db.Model(&domain.Profile{}).
		Where("id = ?", id).
		Update("ultimo_login", quando).Error
}

func (r *profileRepository) RolesByUserID(id string) ([]domain.UserRole, error) {
	var roles []domain.UserRole
	err := r.db.
		Where("user_id = ?", id).
		Order("created_at ASC").
		Find(&roles).Error
	if err != nil {
		return nil, err
	}
	return roles, nil
}
