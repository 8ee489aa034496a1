package dto

import (
	"time"

	"github.com/rafabene/gymdir-backend/internal/domain/entities"
)

// CreateUserRequest representa o cadastro direto com email e senha
type CreateUserRequest struct {
	FirstName string `json:"firstName" binding:"required,min=1,max=50"`
	LastName  string `json:"lastName" binding:"required,min=1,max=50"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8,max=72"`
	City      string `json:"city" binding:"omitempty,max=80"`
	Country   string `json:"country" binding:"omitempty,max=80"`
}

// UserResponse representa a resposta de um usuário
type UserResponse struct {
	ID                    string    `json:"id"`
	FirstName             string    `json:"firstName"`
	LastName              string    `json:"lastName"`
	Email                 string    `json:"email"`
	Role                  string    `json:"role"`
	AvatarURL             *string   `json:"avatarUrl,omitempty"`
	Bio                   string    `json:"bio,omitempty"`
	City                  string    `json:"city,omitempty"`
	Country               string    `json:"country,omitempty"`
	Goals                 []string  `json:"goals,omitempty"`
	PreferredWorkoutTimes []string  `json:"preferredWorkoutTimes,omitempty"`
	HasGithub             bool      `json:"hasGithub"`
	CreatedAt             time.Time `json:"createdAt"`
}

// ToUserResponse converte uma entidade User para UserResponse
func ToUserResponse(user *entities.User) UserResponse {
	workoutTimes := make([]string, 0, len(user.PreferredWorkoutTimes))
	for _, wt := range user.PreferredWorkoutTimes {
		workoutTimes = append(workoutTimes, string(wt))
	}

	return UserResponse{
		ID:                    user.ID,
		FirstName:             user.FirstName,
		LastName:              user.LastName,
		Email:                 user.Email.String(),
		Role:                  string(user.Role),
		AvatarURL:             user.AvatarURL,
		Bio:                   user.Bio,
		City:                  user.City,
		Country:               user.Country,
		Goals:                 user.Goals,
		PreferredWorkoutTimes: workoutTimes,
		HasGithub:             user.HasGithubIdentity(),
		CreatedAt:             user.CreatedAt,
	}
}

// ToUserResponses converte uma lista de entidades User para UserResponse
func ToUserResponses(users []*entities.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i, user := range users {
		responses[i] = ToUserResponse(user)
	}
	return responses
}
