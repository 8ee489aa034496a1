package services

import (
	"context"

	"github.com/rafabene/gymdir-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/gymdir-backend/internal/domain/errors"
	"github.com/rafabene/gymdir-backend/internal/domain/ports"
	"github.com/rafabene/gymdir-backend/internal/domain/repositories"
)

// TrainerService contém a lógica de negócio para perfis de treinador
type TrainerService struct {
	trainerRepo repositories.TrainerRepository
	userRepo    repositories.UserRepository
	uow         ports.UnitOfWork
	logger      ports.Logger
}

// NewTrainerService cria um novo TrainerService
func NewTrainerService(
	trainerRepo repositories.TrainerRepository,
	userRepo repositories.UserRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *TrainerService {
	return &TrainerService{
		trainerRepo: trainerRepo,
		userRepo:    userRepo,
		uow:         uow,
		logger:      logger,
	}
}

// CreateTrainer cria o perfil de treinador do usuário e promove seu papel
// para "trainer" na mesma transação. Cada usuário tem no máximo um perfil.
func (s *TrainerService) CreateTrainer(ctx context.Context, trainer *entities.Trainer) (*entities.Trainer, error) {
	if err := trainer.Validate(); err != nil {
		return nil, err
	}

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		user, err := s.userRepo.FindByID(txCtx, trainer.UserID)
		if err != nil {
			return err
		}
		if user == nil {
			return domainerrors.ErrUserNotFound
		}

		if err := s.trainerRepo.CreateForUser(txCtx, trainer); err != nil {
			return err
		}

		if user.Role == entities.RoleUser {
			user.Role = entities.RoleTrainer
			if err := s.userRepo.Update(txCtx, user); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("trainer profile created", "trainer_id", trainer.ID, "user_id", trainer.UserID)
	return s.GetTrainer(ctx, trainer.ID)
}

// GetTrainer busca um perfil de treinador por ID
func (s *TrainerService) GetTrainer(ctx context.Context, id string) (*entities.Trainer, error) {
	trainer, err := s.trainerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if trainer == nil {
		return nil, domainerrors.ErrTrainerNotFound
	}
	return trainer, nil
}

// GetTrainerByUser busca o perfil de treinador de um usuário
func (s *TrainerService) GetTrainerByUser(ctx context.Context, userID string) (*entities.Trainer, error) {
	trainer, err := s.trainerRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if trainer == nil {
		return nil, domainerrors.ErrTrainerNotFound
	}
	return trainer, nil
}

// UpdateTrainer atualiza o perfil de treinador do usuário. Campos de
// reputação e verificação não são alteráveis por esta operação.
func (s *TrainerService) UpdateTrainer(ctx context.Context, userID string, trainer *entities.Trainer) (*entities.Trainer, error) {
	trainer.UserID = userID
	if err := trainer.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.trainerRepo.UpdateForUser(ctx, userID, trainer)
	if err != nil {
		return nil, err
	}

	s.logger.Info("trainer profile updated", "user_id", userID)
	return updated, nil
}

// DeleteTrainer remove um perfil de treinador
func (s *TrainerService) DeleteTrainer(ctx context.Context, id string) error {
	if err := s.trainerRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("trainer profile deleted", "trainer_id", id)
	return nil
}

// ListTrainers lista treinadores ordenados do melhor avaliado para o pior
func (s *TrainerService) ListTrainers(ctx context.Context, filters repositories.TrainerFilters) ([]*entities.Trainer, error) {
	return s.trainerRepo.List(ctx, filters)
}
