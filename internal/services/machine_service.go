package services

import (
	"context"

	"github.com/rafabene/gymdir-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/gymdir-backend/internal/domain/errors"
	"github.com/rafabene/gymdir-backend/internal/domain/ports"
	"github.com/rafabene/gymdir-backend/internal/domain/repositories"
)

// MachineService contém a lógica de negócio para o catálogo de máquinas
type MachineService struct {
	machineRepo repositories.MachineRepository
	logger      ports.Logger
}

// NewMachineService cria um novo MachineService
func NewMachineService(machineRepo repositories.MachineRepository, logger ports.Logger) *MachineService {
	return &MachineService{
		machineRepo: machineRepo,
		logger:      logger,
	}
}

// CreateMachine registra uma nova máquina no catálogo
func (s *MachineService) CreateMachine(ctx context.Context, machine *entities.Machine) (*entities.Machine, error) {
	if err := machine.Validate(); err != nil {
		return nil, err
	}

	if err := s.machineRepo.Create(ctx, machine); err != nil {
		return nil, err
	}

	s.logger.Info("machine created", "machine_id", machine.ID, "name", machine.Name)
	return machine, nil
}

// GetMachine busca uma máquina por ID
func (s *MachineService) GetMachine(ctx context.Context, id string) (*entities.Machine, error) {
	machine, err := s.machineRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if machine == nil {
		return nil, domainerrors.ErrMachineNotFound
	}
	return machine, nil
}

// SearchMachines busca máquinas por nome, tipo e marca
func (s *MachineService) SearchMachines(ctx context.Context, filters repositories.MachineFilters) ([]*entities.Machine, error) {
	return s.machineRepo.Search(ctx, filters)
}

// ListMachines lista máquinas paginadas com o total
func (s *MachineService) ListMachines(ctx context.Context, page repositories.MachinePage) ([]*entities.Machine, int64, error) {
	return s.machineRepo.List(ctx, page)
}

// UpdateMachine atualiza uma máquina do catálogo
func (s *MachineService) UpdateMachine(ctx context.Context, id string, machine *entities.Machine) (*entities.Machine, error) {
	if err := machine.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.machineRepo.Update(ctx, id, machine)
	if err != nil {
		return nil, err
	}

	s.logger.Info("machine updated", "machine_id", id)
	return updated, nil
}

// DeleteMachine remove uma máquina do catálogo junto com as entradas de
// inventário que a referenciam
func (s *MachineService) DeleteMachine(ctx context.Context, id string) error {
	if err := s.machineRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("machine deleted", "machine_id", id)
	return nil
}
