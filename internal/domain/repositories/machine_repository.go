package repositories

import (
	"context"

	"github.com/rafabene/gymdir-backend/internal/domain/entities"
)

// MachineFilters contém filtros para busca de máquinas no catálogo.
// Name e Brand casam por substring (case-insensitive); Type é exato.
type MachineFilters struct {
	Name  string
	Type  entities.MachineType
	Brand string
}

// MachinePage contém parâmetros de paginação da listagem completa
type MachinePage struct {
	Page  int
	Limit int
}

// MachineRepository define a interface para persistência do catálogo de máquinas
type MachineRepository interface {
	Create(ctx context.Context, machine *entities.Machine) error
	FindByID(ctx context.Context, id string) (*entities.Machine, error)
	Exists(ctx context.Context, id string) (bool, error)
	Update(ctx context.Context, id string, machine *entities.Machine) (*entities.Machine, error)
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, filters MachineFilters) ([]*entities.Machine, error)
	List(ctx context.Context, page MachinePage) ([]*entities.Machine, int64, error)
}
