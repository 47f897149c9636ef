package repository

import (
	"testing"
	"time"

	"github.com/bepp-pmpa/sigpen-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// a second pooled connection would see its own empty :memory: database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&domain.Presidiario{},
		&domain.Transferencia{},
		&domain.Ocorrencia{},
		&domain.SaudePsicologia{},
		&domain.Visita{},
		&domain.Profile{},
		&domain.UserRole{},
		&domain.LogSistema{},
	))
	return db
}

func dia(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func diaPtr(s string) *time.Time {
	t := dia(s)
	return &t
}

func TestPresidiarioFindByIDNotFound(t *testing.T) {
	repo := NewPresidiarioRepository(newTestDB(t))

	_, err := repo.FindByID(999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPresidiarioCreateAndFind(t *testing.T) {
	repo := NewPresidiarioRepository(newTestDB(t))

	created, err := repo.Create(&domain.Presidiario{
		NomeCompleto:   "João da Silva",
		ProcessoNumero: []string{"0001234-56.2024.8.14.0401"},
		Crime:          []string{"Roubo", "Furto"},
	})
	require.NoError(t, err)
	require.NotZero(t, created.IDPresidiario)

	got, err := repo.FindByID(created.IDPresidiario)
	require.NoError(t, err)
	assert.Equal(t, "João da Silva", got.NomeCompleto)
	assert.Equal(t, []string{"Roubo", "Furto"}, got.Crime)
}

func TestCountSolturaEntre(t *testing.T) {
	db := newTestDB(t)
	repo := NewPresidiarioRepository(db)

	seed := []domain.Presidiario{
		{NomeCompleto: "Dentro da janela", DataPrevistaSoltura: diaPtr("2024-06-20")},
		{NomeCompleto: "No limite inferior", DataPrevistaSoltura: diaPtr("2024-06-15")},
		{NomeCompleto: "No limite superior", DataPrevistaSoltura: diaPtr("2024-07-15")},
		{NomeCompleto: "Fora da janela", DataPrevistaSoltura: diaPtr("2024-08-01")},
		{NomeCompleto: "Sem previsão"},
	}
	for i := range seed {
		_, err := repo.Create(&seed[i])
		require.NoError(t, err)
	}

	// both ends inclusive
	n, err := repo.CountSolturaEntre(dia("2024-06-15"), dia("2024-07-15"))
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestListComSolturaPrevista(t *testing.T) {
	repo := NewPresidiarioRepository(newTestDB(t))

	for _, p := range []domain.Presidiario{
		{NomeCompleto: "Depois", DataPrevistaSoltura: diaPtr("2025-03-01")},
		{NomeCompleto: "Sem data"},
		{NomeCompleto: "Antes", DataPrevistaSoltura: diaPtr("2024-01-01")},
	} {
		cp := p
		_, err := repo.Create(&cp)
		require.NoError(t, err)
	}

	out, err := repo.ListComSolturaPrevista()
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Antes", out[0].NomeCompleto)
	assert.Equal(t, "Depois", out[1].NomeCompleto)
}

func TestListOrdenado(t *testing.T) {
	repo := NewPresidiarioRepository(newTestDB(t))

	for _, nome := range []string{"Carlos", "Ana", "Bruno"} {
		_, err := repo.Create(&domain.Presidiario{NomeCompleto: nome})
		require.NoError(t, err)
	}

	out, err := repo.ListOrdenado("nome_completo")
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, "Ana", out[0].NomeCompleto)
	assert.Equal(t, "Bruno", out[1].NomeCompleto)
	assert.Equal(t, "Carlos", out[2].NomeCompleto)
}
