package dto

import (
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// UserDTO é a projeção pública do usuário: o hash da senha nunca sai daqui.
type UserDTO struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PhoneContact string    `json:"phone_contact"`
	Type         string    `json:"type"`
	CreatedAt    time.Time `json:"created_at"`
}

func FromUser(u *models.User) UserDTO {
	return UserDTO{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PhoneContact: u.PhoneContact,
		Type:         u.Type,
		CreatedAt:    u.CreatedAt,
	}
}

func FromUsers(users []models.User) []UserDTO {
	out := make([]UserDTO, 0, len(users))
	for i := range users {
		out = append(out, FromUser(&users[i]))
	}
	return out
}

// AuthUserDTO é o que a autenticação devolve: só campos não sensíveis.
type AuthUserDTO struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Type  string `json:"type"`
}

type AuthResultDTO struct {
	Authenticated bool        `json:"authenticated"`
	User          AuthUserDTO `json:"user"`
}
