package user

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/user"
	"github.com/BruksfildServices01/barber-booking/internal/dto"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/validators"
)

type RegisterUserInput struct {
	Name         string `json:"name" validate:"required,max=100"`
	Email        string `json:"email" validate:"required,email,max=100"`
	PhoneContact string `json:"phone_contact" validate:"omitempty,max=20"`
	Type         string `json:"type"`
	Password     string `json:"password" validate:"omitempty,min=6,max=72"`
}

type RegisterUser struct {
	repo   domain.Repository
	hasher domain.PasswordHasher
	audit  *audit.Dispatcher

	// nil desliga a checagem de domínio do e-mail
	domainCheck func(ctx context.Context, email string) bool
}

func NewRegisterUser(
	repo domain.Repository,
	hasher domain.PasswordHasher,
	audit *audit.Dispatcher,
	checkEmailDomain bool,
) *RegisterUser {
	uc := &RegisterUser{
		repo:   repo,
		hasher: hasher,
		audit:  audit,
	}
	if checkEmailDomain {
		uc.domainCheck = validators.IsEmailDomainValid
	}
	return uc
}

func (uc *RegisterUser) Execute(
	ctx context.Context,
	in RegisterUserInput,
) (dto.UserDTO, error) {

	// --------------------------------------------------
	// 1️⃣ Validação
	// --------------------------------------------------
	in.Email = domain.NormalizeEmail(in.Email)
	if err := validators.Struct(in).Err(); err != nil {
		return dto.UserDTO{}, err
	}

	userType, ok := domain.ResolveType(in.Type)
	if !ok {
		return dto.UserDTO{}, httperr.ErrValidation("invalid_user_type",
			httperr.FieldError{Field: "type", Rule: "oneof"})
	}

	if uc.domainCheck != nil && !uc.domainCheck(ctx, in.Email) {
		return dto.UserDTO{}, httperr.ErrValidation("invalid_email_domain",
			httperr.FieldError{Field: "email", Rule: "domain"})
	}

	// --------------------------------------------------
	// 2️⃣ Senha (opcional)
	// --------------------------------------------------
	u := &models.User{
		Name:         in.Name,
		Email:        in.Email,
		PhoneContact: in.PhoneContact,
		Type:         string(userType),
	}

	if in.Password != "" {
		hash, err := uc.hasher.Hash(in.Password)
		if err != nil {
			return dto.UserDTO{}, fmt.Errorf("hash password: %w", err)
		}
		u.PasswordHash = hash
	}

	// --------------------------------------------------
	// 3️⃣ Persistência
	// --------------------------------------------------
	if err := uc.repo.Create(ctx, u); err != nil {
		return dto.UserDTO{}, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &u.ID,
		Action:   "user_registered",
		Entity:   "user",
		EntityID: &u.ID,
		Metadata: map[string]any{"type": u.Type},
	})

	return dto.FromUser(u), nil
}
