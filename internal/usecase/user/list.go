package user

import (
	"context"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/user"
	"github.com/BruksfildServices01/barber-booking/internal/dto"
)

type ListUsers struct {
	repo domain.Repository
}

func NewListUsers(repo domain.Repository) *ListUsers {
	return &ListUsers{repo: repo}
}

// Execute lista todos quando userType é vazio.
func (uc *ListUsers) Execute(ctx context.Context, userType domain.Type) ([]dto.UserDTO, error) {
	users, err := uc.repo.List(ctx, userType)
	if err != nil {
		return nil, err
	}
	return dto.FromUsers(users), nil
}

type GetUser struct {
	repo domain.Repository
}

func NewGetUser(repo domain.Repository) *GetUser {
	return &GetUser{repo: repo}
}

func (uc *GetUser) Execute(ctx context.Context, id uint) (dto.UserDTO, error) {
	u, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return dto.UserDTO{}, err
	}
	return dto.FromUser(u), nil
}
