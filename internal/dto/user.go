package dto

import (
	"github.com/NBFYayI/Todo/internal/models"
)

// UserDTO represents a user in API responses. The password digest is never
// exposed.
type UserDTO struct {
	ID    uint64 `json:"id"`
	Email string `json:"email"`
}

// TokenDTO represents a successful login response
type TokenDTO struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:    user.ID,
		Email: user.Email,
	}
}

// ToUserDTOs converts a slice of User models to UserDTOs
func ToUserDTOs(users []models.User) []UserDTO {
	dtos := make([]UserDTO, len(users))
	for i, user := range users {
		dtos[i] = ToUserDTO(user)
	}
	return dtos
}
