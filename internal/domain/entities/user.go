package entities

import (
	"errors"
	"strings"
	"time"

	"github.com/rafabene/gymdir-backend/internal/domain/valueobjects"
)

// WorkoutTime representa um horário de treino preferido
type WorkoutTime string

const (
	WorkoutMorning   WorkoutTime = "morning"
	WorkoutAfternoon WorkoutTime = "afternoon"
	WorkoutEvening   WorkoutTime = "evening"
)

// User representa um usuário do sistema
type User struct {
	ID                    string
	FirstName             string
	LastName              string
	Email                 valueobjects.Email
	PasswordHash          string
	Role                  Role
	GithubID              *string
	AvatarURL             *string
	Bio                   string
	City                  string
	Country               string
	Goals                 []string
	PreferredWorkoutTimes []WorkoutTime
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// FullName retorna o nome completo do usuário
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// IsAdmin verifica se o usuário é admin
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// HasPermission verifica se o usuário tem uma permissão
func (u *User) HasPermission(permission Permission) bool {
	return u.Role.HasPermission(permission)
}

// HasGithubIdentity verifica se o usuário já possui identidade GitHub vinculada
func (u *User) HasGithubIdentity() bool {
	return u.GithubID != nil && *u.GithubID != ""
}

// Validate valida regras de negócio da entidade User
func (u *User) Validate() error {
	if u.Email.String() == "" {
		return errors.New("email is required")
	}

	if u.FirstName == "" {
		return errors.New("firstName is required")
	}

	if u.LastName == "" {
		return errors.New("lastName is required")
	}

	if !u.Role.IsValid() {
		return errors.New("invalid role")
	}

	for _, wt := range u.PreferredWorkoutTimes {
		if wt != WorkoutMorning && wt != WorkoutAfternoon && wt != WorkoutEvening {
			return errors.New("invalid preferred workout time")
		}
	}

	return nil
}
