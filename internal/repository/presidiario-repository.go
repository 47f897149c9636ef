package repository

import (
	"errors"
	"log"
	"time"

	"github.com/bepp-pmpa/sigpen-backend/internal/domain"
	"gorm.io/gorm"
)

type PresidiarioRepository interface {
	Create(p *domain.Presidiario) (*domain.Presidiario, error)
	Save(p *domain.Presidiario) error
	FindByID(id uint) (*domain.Presidiario, error)
	ListRecentes() ([]domain.Presidiario, error)
	Search(term string) ([]domain.Presidiario, error)
	CountTotal() (int64, error)
	CountSolturaEntre(inicio, fim time.Time) (int64, error)
	ListOrdenado(coluna string) ([]domain.Presidiario, error)
	ListComSolturaPrevista() ([]domain.Presidiario, error)
}

type presidiarioRepository struct {
	db *gorm.DB
}

func NewPresidiarioRepository(db *gorm.DB) PresidiarioRepository {
	return &presidiarioRepository{db: db}
}

func (r *presidiarioRepository) Create(p *domain.Presidiario) (*domain.Presidiario, error) {
	if p == nil {
		return nil, errors.New("nil presidiario")
	}

	if err := r.db.Create(p).Error; err != nil {
		log.Printf("create presidiario error: %v", err)
		return nil, errors.New("failed to create presidiario")
	}

	return p, nil
}

func (r *presidiarioRepository) Save(p *domain.Presidiario) error {
	if p == nil {
		return errors.New("nil presidiario")
	}

	if err := r.db.Save(p).Error; err != nil {
		log.Printf("save presidiario error: %v", err)
		return errors.New("failed to save presidiario")
	}
	return nil
}

func (r *presidiarioRepository) FindByID(id uint) (*domain.Presidiario, error) {
	p := &domain.Presidiario{}

	if err := r.db.First(p, "id_presidiario = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		log.Printf("find presidiario by id error: %v", err)
		return nil, errors.New("failed to find presidiario by ID")
	}

	return p, nil
}

func (r *presidiarioRepository) ListRecentes() ([]domain.Presidiario, error) {
	var out []domain.Presidiario
	if err := r.db.Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Search matches a case-insensitive substring against nome_completo, cpf,
// processo_numero, ala and cela, the same disjunction the consulta screen
// sends.
func (r *presidiarioRepository) Search(term string) ([]domain.Presidiario, error) {
	like := "%" + term + "%"

	var out []domain.Presidiario
	err := r.db.
		Where(
			r.db.Where("nome_completo ILIKE ?", like).
				Or("cpf ILIKE ?", like).
				Or("processo_numero::text ILIKE ?", like).
				Or("ala ILIKE ?", like).
				Or("cela ILIKE ?", like),
		).
		Order("created_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *presidiarioRepository) CountTotal() (int64, error) {
	var count int64
	if err := r.db.Model(&domain.Presidiario{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *presidiarioRepository) CountSolturaEntre(inicio, fim time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Presidiario{}).
		Where("data_prevista_soltura >= ? AND data_prevista_soltura <= ?", inicio, fim).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// ListOrdenado is used by the report generator; coluna is always one of the
// fixed report sort columns, never user input.
func (r *presidiarioRepository) ListOrdenado(coluna string) ([]domain.Presidiario, error) {
	var out []domain.Presidiario
	if err := r.db.Order(coluna + " ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *presidiarioRepository) ListComSolturaPrevista() ([]domain.Presidiario, error) {
	var out []domain.Presidiario
	err := r.db.
		Where("data_prevista_soltura IS NOT NULL").
		Order("data_prevista_soltura ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
