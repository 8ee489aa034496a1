package repositories

import (
	"context"
	"time"

	"github.com/rafabene/gymdir-backend/internal/domain/entities"
)

// InventoryUpdate carrega os campos opcionais de manutenção de uma entrada
// de inventário durante o merge
type InventoryUpdate struct {
	Quantity       int
	LastServicedAt *time.Time
	AreaNote       *string
}

// GymByMachineFilters restringe a busca de academias por máquina
type GymByMachineFilters struct {
	City    string
	Country string
}

// GymRepository define a interface para persistência de academias e do
// inventário de máquinas embutido nelas
type GymRepository interface {
	Create(ctx context.Context, gym *entities.Gym) error
	FindByID(ctx context.Context, id string) (*entities.Gym, error)
	List(ctx context.Context) ([]*entities.Gym, error)
	Update(ctx context.Context, id string, gym *entities.Gym) (*entities.Gym, error)
	Delete(ctx context.Context, id string) error

	// IncrementInventory soma quantity à entrada (gymID, machineID) em um
	// único UPDATE atômico, sobrescrevendo os campos de manutenção quando
	// fornecidos. Retorna false se não existe entrada para essa máquina.
	IncrementInventory(ctx context.Context, gymID, machineID string, update InventoryUpdate) (bool, error)

	// AppendInventory insere uma nova entrada de inventário. Retorna
	// ErrGymNotFound se a academia não existe e ErrInventoryEntryExists se
	// outra requisição inseriu a mesma máquina primeiro (conflito na chave
	// composta gym_id+machine_id).
	AppendInventory(ctx context.Context, gymID, machineID string, update InventoryUpdate) error

	// FindByMachine retorna academias cujo inventário referencia a máquina
	FindByMachine(ctx context.Context, machineID string, filters GymByMachineFilters) ([]*entities.Gym, error)
}
