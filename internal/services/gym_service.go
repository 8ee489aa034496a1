package services

import (
	"context"
	"errors"
	"time"

	"github.com/rafabene/gymdir-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/gymdir-backend/internal/domain/errors"
	"github.com/rafabene/gymdir-backend/internal/domain/ports"
	"github.com/rafabene/gymdir-backend/internal/domain/repositories"
)

// GymService contém a lógica de negócio para academias e seus inventários
type GymService struct {
	gymRepo     repositories.GymRepository
	machineRepo repositories.MachineRepository
	uow         ports.UnitOfWork
	logger      ports.Logger
}

// NewGymService cria um novo GymService
func NewGymService(
	gymRepo repositories.GymRepository,
	machineRepo repositories.MachineRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *GymService {
	return &GymService{
		gymRepo:     gymRepo,
		machineRepo: machineRepo,
		uow:         uow,
		logger:      logger,
	}
}

// CreateGym cria uma nova academia
func (s *GymService) CreateGym(ctx context.Context, gym *entities.Gym) (*entities.Gym, error) {
	if err := gym.Validate(); err != nil {
		return nil, err
	}

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		return s.gymRepo.Create(txCtx, gym)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("gym created", "gym_id", gym.ID, "name", gym.Name)
	return s.GetGym(ctx, gym.ID)
}

// GetGym busca uma academia por ID com inventário e treinadores resolvidos
func (s *GymService) GetGym(ctx context.Context, id string) (*entities.Gym, error) {
	gym, err := s.gymRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if gym == nil {
		return nil, domainerrors.ErrGymNotFound
	}
	return gym, nil
}

// ListGyms lista todas as academias
func (s *GymService) ListGyms(ctx context.Context) ([]*entities.Gym, error) {
	return s.gymRepo.List(ctx)
}

// UpdateGym atualiza uma academia existente
func (s *GymService) UpdateGym(ctx context.Context, id string, gym *entities.Gym) (*entities.Gym, error) {
	if err := gym.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.gymRepo.Update(ctx, id, gym)
	if err != nil {
		return nil, err
	}

	s.logger.Info("gym updated", "gym_id", id)
	return updated, nil
}

// DeleteGym remove uma academia e seu inventário
func (s *GymService) DeleteGym(ctx context.Context, id string) error {
	if err := s.gymRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("gym deleted", "gym_id", id)
	return nil
}

// LinkMachineInput representa os dados de vinculação de uma máquina ao
// inventário de uma academia
type LinkMachineInput struct {
	GymID          string
	MachineID      string
	Quantity       int
	LastServicedAt *time.Time
	AreaNote       *string
}

// LinkMachine mescla uma máquina no inventário da academia. Se já existe uma
// entrada para a máquina sua quantidade é incrementada e os campos de
// manutenção são sobrescritos quando enviados; caso contrário uma entrada
// nova é inserida. A entrada por máquina é única: duas requisições
// concorrentes para a mesma máquina terminam em uma única entrada com a soma
// das quantidades.
func (s *GymService) LinkMachine(ctx context.Context, input LinkMachineInput) (*entities.Gym, error) {
	if input.Quantity < 1 {
		return nil, domainerrors.ErrInvalidQuantity
	}

	// A máquina é verificada antes de tocar a academia para que máquina
	// inexistente nunca altere inventário
	exists, err := s.machineRepo.Exists(ctx, input.MachineID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domainerrors.ErrMachineNotFound
	}

	update := repositories.InventoryUpdate{
		Quantity:       input.Quantity,
		LastServicedAt: input.LastServicedAt,
		AreaNote:       input.AreaNote,
	}

	if err := s.mergeInventory(ctx, input.GymID, input.MachineID, update); err != nil {
		return nil, err
	}

	s.logger.Info("machine linked to gym",
		"gym_id", input.GymID, "machine_id", input.MachineID, "quantity", input.Quantity)
	return s.GetGym(ctx, input.GymID)
}

// mergeInventory tenta o incremento atômico e cai para o insert quando não
// há entrada. Se o insert perde a corrida para outra requisição (conflito na
// chave composta), o incremento é repetido uma vez contra a entrada vencedora.
func (s *GymService) mergeInventory(ctx context.Context, gymID, machineID string, update repositories.InventoryUpdate) error {
	updated, err := s.gymRepo.IncrementInventory(ctx, gymID, machineID, update)
	if err != nil {
		return err
	}
	if updated {
		return nil
	}

	err = s.gymRepo.AppendInventory(ctx, gymID, machineID, update)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domainerrors.ErrInventoryEntryExists) {
		return err
	}

	updated, err = s.gymRepo.IncrementInventory(ctx, gymID, machineID, update)
	if err != nil {
		return err
	}
	if !updated {
		// A entrada vencedora sumiu entre o conflito e a repetição
		return domainerrors.ErrGymNotFound
	}
	return nil
}

// FindGymsByMachine retorna academias cujo inventário contém a máquina,
// opcionalmente filtradas por cidade e país
func (s *GymService) FindGymsByMachine(ctx context.Context, machineID string, filters repositories.GymByMachineFilters) ([]*entities.Gym, error) {
	exists, err := s.machineRepo.Exists(ctx, machineID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domainerrors.ErrMachineNotFound
	}

	return s.gymRepo.FindByMachine(ctx, machineID, filters)
}
