package repository

import (
	"errors"
	"log"

	"github.com/bepp-pmpa/sigpen-backend/internal/domain"
	"gorm.io/gorm"
)

type TransferenciaRepository interface {
	Create(t *domain.Transferencia) error
	ListByPresidiario(idPresidiario uint) ([]domain.Transferencia, error)
	ListRecentes() ([]domain.Transferencia, error)
}

type transferenciaRepository struct {
	db *gorm.DB
}

func NewTransferenciaRepository(db *gorm.DB) TransferenciaRepository {
	return &transferenciaRepository{db: db}
}

func (r *transferenciaRepository) Create(t *domain.Transferencia) error {
	if t == nil {
		return errors.New("nil transferencia")
	}

	if err := r.db.Create(t).Error; err != nil {
		log.Printf("create transferencia error: %v", err)
		return errors.New("failed to create transferencia")
	}
	return nil
}

// ListByPresidiario returns the transfer history newest first; ties on the
// same date keep insertion order.
func (r *transferenciaRepository) ListByPresidiario(idPresidiario uint) ([]domain.Transferencia, error) {
	var out []domain.Transferencia
	err := r.db.
		Where("id_presidiario = ?", idPresidiario).
		Order("data_transferencia DESC, id_transferencia ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *transferenciaRepository) ListRecentes() ([]domain.Transferencia, error) {
	var out []domain.Transferencia
	err := r.db.
		Preload("Presidiario").
		Order("created_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
