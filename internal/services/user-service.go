package services

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/bepp-pmpa/sigpen-backend/internal/domain"
	"github.com/bepp-pmpa/sigpen-backend/internal/dto"
	"github.com/bepp-pmpa/sigpen-backend/internal/helper"
	"github.com/bepp-pmpa/sigpen-backend/internal/repository"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// ErrAcessoRestrito marks operations reserved for the configured super-admin.
var ErrAcessoRestrito = errors.New("acesso restrito ao administrador do sistema")

type UserService interface {
	Register(input dto.RegisterRequest) (*domain.Profile, error)
	Login(input dto.UserLogin, ip string) (dto.LoginResponse, error)
	GetProfile(userID string) (*domain.Profile, error)
	NivelAcesso(userID string) string
	IsSuperAdmin(email string) bool
	ListUsers(actor dto.AuthResponse) ([]dto.ProfileResponse, error)
	CreateUser(input dto.CreateUserRequest, actor dto.AuthResponse, ip string) (*domain.Profile, error)
}

type userService struct {
	profiles        repository.ProfileRepository
	auth            helper.Auth
	superAdminEmail string
	audit           *AuditTrail
}

func NewUserService(
	profiles repository.ProfileRepository,
	auth helper.Auth,
	superAdminEmail string,
	audit *AuditTrail,
) UserService {
	return &userService{
		profiles:        profiles,
		auth:            auth,
		superAdminEmail: superAdminEmail,
		audit:           audit,
	}
}

func (s *userService) Register(input dto.RegisterRequest) (*domain.Profile, error) {
	p, err := s.newProfile(input.Email, input.Password, input.NomeCompleto, domain.NivelOperador)
	if err != nil {
		return nil, err
	}

	// self-signup always lands on the default operational role
	if err := s.profiles.CreateWithRole(p, domain.NivelOperador); err != nil {
		if helper.IsDuplicateKey(err) {
			return nil, errors.New("email already registered")
		}
		log.Printf("register profile error: %v", err)
		return nil, errors.New("failed to register user")
	}
	return p, nil
}

func (s *userService) Login(input dto.UserLogin, ip string) (dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || input.Password == "" {
		return dto.LoginResponse{}, errors.New("email and password are required")
	}

	p, err := s.profiles.FindByEmail(email)
	if err != nil {
		return dto.LoginResponse{}, errors.New("invalid email or password")
	}
	if err := s.auth.VerifyPassword(input.Password, p.PasswordHash); err != nil {
		return dto.LoginResponse{}, err
	}

	token, err := s.auth.GenerateToken(p.ID, p.Email)
	if err != nil {
		return dto.LoginResponse{}, err
	}

	if err := s.profiles.SetUltimoLogin(p.ID, time.Now()); err != nil {
		log.Printf("update ultimo_login for %s failed: %v", p.ID, err)
	}
	s.audit.Record(p.ID, "Login", ip, map[string]interface{}{"email": p.Email})

	return dto.LoginResponse{
		Token: token,
		User:  toProfileResponse(p, s.NivelAcesso(p.ID)),
	}, nil
}

func (s *userService) GetProfile(userID string) (*domain.Profile, error) {
	return s.profiles.FindByID(userID)
}

// NivelAcesso resolves the effective role: the earliest user_roles row wins,
// then the profile's nivel_acesso, then the default operador.
func (s *userService) NivelAcesso(userID string) string {
	roles, err := s.profiles.RolesByUserID(userID)
	if err == nil && len(roles) > 0 && roles[0].Role != "" {
		return roles[0].Role
	}
	if err != nil {
		log.Printf("roles lookup for %s failed: %v", userID, err)
	}

	p, err := s.profiles.FindByID(userID)
	if err == nil && p.NivelAcesso != "" {
		return p.NivelAcesso
	}
	return domain.NivelOperador
}

// IsSuperAdmin grants the user-management screens to the single configured
// administrator account and nobody else. No session or no configured email
// means no access.
func (s *userService) IsSuperAdmin(email string) bool {
	if s.superAdminEmail == "" || email == "" {
		return false
	}
	return email == s.superAdminEmail
}

func (s *userService) ListUsers(actor dto.AuthResponse) ([]dto.ProfileResponse, error) {
	if !s.IsSuperAdmin(actor.Email) {
		return nil, ErrAcessoRestrito
	}

	profiles, err := s.profiles.List()
	if err != nil {
		return nil, err
	}

	out := make([]dto.ProfileResponse, 0, len(profiles))
	for i := range profiles {
		p := profiles[i]
		nivel := p.NivelAcesso
		if len(p.Roles) > 0 && p.Roles[0].Role != "" {
			nivel = p.Roles[0].Role
		}
		if nivel == "" {
			nivel = domain.NivelOperador
		}
		out = append(out, toProfileResponse(&p, nivel))
	}
	return out, nil
}

func (s *userService) CreateUser(input dto.CreateUserRequest, actor dto.AuthResponse, ip string) (*domain.Profile, error) {
	if !s.IsSuperAdmin(actor.Email) {
		return nil, ErrAcessoRestrito
	}

	nivel := input.NivelAcesso
	if nivel == "" {
		nivel = domain.NivelOperador
	}
	if !validNivel(nivel) {
		return nil, errors.New("invalid nivel_acesso")
	}

	p, err := s.newProfile(input.Email, input.Password, input.NomeCompleto, nivel)
	if err != nil {
		return nil, err
	}

	if err := s.profiles.CreateWithRole(p, nivel); err != nil {
		if helper.IsDuplicateKey(err) {
			return nil, errors.New("email already registered")
		}
		log.Printf("provision user error: %v", err)
		return nil, errors.New("failed to create user")
	}

	s.audit.Record(actor.UserID, "Criação de usuário", ip, map[string]interface{}{
		"email":        p.Email,
		"nivel_acesso": nivel,
	})
	return p, nil
}

func (s *userService) newProfile(email, password, nome, nivel string) (*domain.Profile, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	nome = strings.TrimSpace(nome)

	if email == "" || !strings.Contains(email, "@") {
		return nil, errors.New("a valid email is required")
	}
	if len(password) < 6 {
		return nil, errors.New("password must have at least 6 characters")
	}
	if nome == "" {
		return nil, errors.New("nome_completo is required")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("failed to hash password")
	}

	return &domain.Profile{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hashed),
		NomeCompleto: nome,
		NivelAcesso:  nivel,
	}, nil
}

func toProfileResponse(p *domain.Profile, nivel string) dto.ProfileResponse {
	return dto.ProfileResponse{
		ID:           p.ID,
		Email:        p.Email,
		NomeCompleto: p.NomeCompleto,
		NivelAcesso:  nivel,
		UltimoLogin:  p.UltimoLogin,
		CreatedAt:    p.CreatedAt,
	}
}

func validNivel(s string) bool {
	switch s {
	case domain.NivelAdmin, domain.NivelOperador, domain.NivelConsulta, domain.NivelVisitante:
		return true
	}
	return false
}
