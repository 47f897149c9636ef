package services

import (
	"errors"
	"testing"

	"github.com/bepp-pmpa/sigpen-backend/internal/domain"
	"github.com/bepp-pmpa/sigpen-backend/internal/dto"
	"github.com/bepp-pmpa/sigpen-backend/internal/helper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const superAdmin = "chefe@sigpen.gov.br"

func newUserSvc(profiles *fakeProfileRepo) UserService {
	return NewUserService(profiles, helper.SetupAuth("test-secret"), superAdmin, noopAudit())
}

func TestIsSuperAdmin(t *testing.T) {
	svc := newUserSvc(&fakeProfileRepo{})

	assert.True(t, svc.IsSuperAdmin(superAdmin))
	assert.False(t, svc.IsSuperAdmin("outro@sigpen.gov.br"))
	assert.False(t, svc.IsSuperAdmin("CHEFE@sigpen.gov.br"))
	assert.False(t, svc.IsSuperAdmin(""))
}

func TestIsSuperAdminUnconfigured(t *testing.T) {
	svc := NewUserService(&fakeProfileRepo{}, helper.SetupAuth("test-secret"), "", noopAudit())

	assert.False(t, svc.IsSuperAdmin(""))
	assert.False(t, svc.IsSuperAdmin(superAdmin))
}

func TestNivelAcessoFirstRoleWins(t *testing.T) {
	profiles := &fakeProfileRepo{
		byID: map[string]*domain.Profile{
			"u1": {ID: "u1", NivelAcesso: domain.NivelConsulta},
		},
		roles: map[string][]domain.UserRole{
			"u1": {
				{Role: domain.NivelAdmin},
				{Role: domain.NivelVisitante},
			},
		},
	}

	assert.Equal(t, domain.NivelAdmin, newUserSvc(profiles).NivelAcesso("u1"))
}

func TestNivelAcessoFallsBackToProfile(t *testing.T) {
	profiles := &fakeProfileRepo{
		byID: map[string]*domain.Profile{
			"u1": {ID: "u1", NivelAcesso: domain.NivelConsulta},
		},
		roles: map[string][]domain.UserRole{},
	}

	assert.Equal(t, domain.NivelConsulta, newUserSvc(profiles).NivelAcesso("u1"))
}

func TestNivelAcessoDefaultsToOperador(t *testing.T) {
	profiles := &fakeProfileRepo{
		byID:     map[string]*domain.Profile{},
		rolesErr: errors.New("db down"),
	}

	assert.Equal(t, domain.NivelOperador, newUserSvc(profiles).NivelAcesso("ghost"))
}

func TestCreateUserRequiresSuperAdmin(t *testing.T) {
	profiles := &fakeProfileRepo{}
	svc := newUserSvc(profiles)

	_, err := svc.CreateUser(dto.CreateUserRequest{
		Email:        "novo@sigpen.gov.br",
		Password:     "segredo1",
		NomeCompleto: "Novo Usuário",
	}, dto.AuthResponse{UserID: "u1", Email: "outro@sigpen.gov.br"}, "")
	assert.ErrorIs(t, err, ErrAcessoRestrito)
	assert.Empty(t, profiles.created)
}

func TestCreateUserBySuperAdmin(t *testing.T) {
	profiles := &fakeProfileRepo{}
	svc := newUserSvc(profiles)

	p, err := svc.CreateUser(dto.CreateUserRequest{
		Email:        "Novo@SIGPEN.gov.br",
		Password:     "segredo1",
		NomeCompleto: "Novo Usuário",
		NivelAcesso:  domain.NivelConsulta,
	}, dto.AuthResponse{UserID: "u1", Email: superAdmin}, "10.0.0.1")
	require.NoError(t, err)

	assert.Equal(t, "novo@sigpen.gov.br", p.Email)
	assert.Equal(t, domain.NivelConsulta, p.NivelAcesso)
	assert.NotEmpty(t, p.ID)
	assert.NotEqual(t, "segredo1", p.PasswordHash)
	require.Len(t, profiles.created, 1)
}

func TestCreateUserRejectsInvalidNivel(t *testing.T) {
	svc := newUserSvc(&fakeProfileRepo{})

	_, err := svc.CreateUser(dto.CreateUserRequest{
		Email:        "novo@sigpen.gov.br",
		Password:     "segredo1",
		NomeCompleto: "Novo Usuário",
		NivelAcesso:  "gerente",
	}, dto.AuthResponse{UserID: "u1", Email: superAdmin}, "")
	assert.Error(t, err)
}

func TestListUsersRequiresSuperAdmin(t *testing.T) {
	svc := newUserSvc(&fakeProfileRepo{})

	_, err := svc.ListUsers(dto.AuthResponse{UserID: "u1", Email: "outro@sigpen.gov.br"})
	assert.ErrorIs(t, err, ErrAcessoRestrito)
}

func TestListUsersResolvesNivel(t *testing.T) {
	profiles := &fakeProfileRepo{
		listed: []domain.Profile{
			{ID: "a", Email: "a@x", NivelAcesso: domain.NivelConsulta, Roles: []domain.UserRole{{Role: domain.NivelAdmin}}},
			{ID: "b", Email: "b@x", NivelAcesso: domain.NivelConsulta},
			{ID: "c", Email: "c@x"},
		},
	}
	svc := newUserSvc(profiles)

	out, err := svc.ListUsers(dto.AuthResponse{UserID: "u1", Email: superAdmin})
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, domain.NivelAdmin, out[0].NivelAcesso)
	assert.Equal(t, domain.NivelConsulta, out[1].NivelAcesso)
	assert.Equal(t, domain.NivelOperador, out[2].NivelAcesso)
}

func TestRegisterValidation(t *testing.T) {
	svc := newUserSvc(&fakeProfileRepo{})

	_, err := svc.Register(dto.RegisterRequest{Email: "no-at-sign", Password: "segredo1", NomeCompleto: "X"})
	assert.Error(t, err)

	_, err = svc.Register(dto.RegisterRequest{Email: "a@b.c", Password: "12345", NomeCompleto: "X"})
	assert.Error(t, err)
}

func TestLoginWrongPassword(t *testing.T) {
	profiles := &fakeProfileRepo{}
	svc := newUserSvc(profiles)

	p, err := svc.Register(dto.RegisterRequest{
		Email:        "op@sigpen.gov.br",
		Password:     "segredo1",
		NomeCompleto: "Operador",
	})
	require.NoError(t, err)

	profiles.byEmail = map[string]*domain.Profile{p.Email: p}
	profiles.byID = map[string]*domain.Profile{p.ID: p}

	_, err = svc.Login(dto.UserLogin{Email: "op@sigpen.gov.br", Password: "errada99"}, "")
	assert.Error(t, err)

	res, err := svc.Login(dto.UserLogin{Email: "op@sigpen.gov.br", Password: "segredo1"}, "")
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, p.ID, res.User.ID)
}
