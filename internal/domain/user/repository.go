package user

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type Repository interface {
	Create(ctx context.Context, u *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	// List devolve todos quando userType é vazio.
	List(ctx context.Context, userType Type) ([]models.User, error)
}

// PasswordHasher abstrai o algoritmo de hash de senha.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, digest string) bool
}
