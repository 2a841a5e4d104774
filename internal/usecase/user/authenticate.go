package user

import (
	"context"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/user"
	"github.com/BruksfildServices01/barber-booking/internal/dto"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/validators"
)

const CodeInvalidCredentials = "invalid_credentials"

type AuthenticateInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type Authenticate struct {
	repo   domain.Repository
	hasher domain.PasswordHasher
}

func NewAuthenticate(
	repo domain.Repository,
	hasher domain.PasswordHasher,
) *Authenticate {
	return &Authenticate{
		repo:   repo,
		hasher: hasher,
	}
}

// Execute não diferencia e-mail inexistente de senha errada.
func (uc *Authenticate) Execute(
	ctx context.Context,
	in AuthenticateInput,
) (dto.AuthResultDTO, error) {

	if err := validators.Struct(in).Err(); err != nil {
		return dto.AuthResultDTO{}, err
	}

	u, err := uc.repo.FindByEmail(ctx, domain.NormalizeEmail(in.Email))
	if err != nil {
		if httperr.KindOf(err) == httperr.KindNotFound {
			return dto.AuthResultDTO{}, httperr.ErrAuth(CodeInvalidCredentials)
		}
		return dto.AuthResultDTO{}, err
	}

	if !uc.hasher.Verify(in.Password, u.PasswordHash) {
		return dto.AuthResultDTO{}, httperr.ErrAuth(CodeInvalidCredentials)
	}

	return dto.AuthResultDTO{
		Authenticated: true,
		User: dto.AuthUserDTO{
			ID:    u.ID,
			Name:  u.Name,
			Email: u.Email,
			Type:  u.Type,
		},
	}, nil
}
