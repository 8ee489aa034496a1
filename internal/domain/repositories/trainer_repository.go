package repositories

import (
	"context"

	"github.com/rafabene/gymdir-backend/internal/domain/entities"
)

// TrainerFilters contém filtros para listagem de treinadores.
// Specialties usa semântica OR: basta uma especialidade em comum.
type TrainerFilters struct {
	City        string
	Country     string
	MinRating   *float64
	Specialties []string
}

// TrainerRepository define a interface para persistência de perfis de treinador
type TrainerRepository interface {
	// CreateForUser cria o perfil de treinador do usuário. Retorna
	// ErrTrainerProfileExists se o usuário já possui um perfil (índice
	// único em user_id).
	CreateForUser(ctx context.Context, trainer *entities.Trainer) error
	FindByID(ctx context.Context, id string) (*entities.Trainer, error)
	FindByUserID(ctx context.Context, userID string) (*entities.Trainer, error)
	UpdateForUser(ctx context.Context, userID string, trainer *entities.Trainer) (*entities.Trainer, error)
	Delete(ctx context.Context, id string) error

	// List retorna treinadores ordenados por rating_avg DESC,
	// rating_count DESC, years_experience DESC ("melhor primeiro").
	List(ctx context.Context, filters TrainerFilters) ([]*entities.Trainer, error)
}
