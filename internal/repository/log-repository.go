package repository

import (
	"errors"
	"log"

	"github.com/bepp-pmpa/sigpen-backend/internal/domain"
	"gorm.io/gorm"
)

type LogRepository interface {
	Create(entry *domain.LogSistema) error
}

type logRepository struct {
	db *gorm.DB
}

func NewLogRepository(db *gorm.DB) LogRepository {
	return &logRepository{db: db}
}

func (r *logRepository) Create(entry *domain.LogSistema) error {
	if entry == nil {
		return errors.New("nil log entry")
	}

	if err := r.db.Create(entry).Error; err != nil {
		log.Printf("create log entry error: %v", err)
		return errors.New("failed to create log entry")
	}
	return nil
}
