package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/rafabene/gymdir-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/gymdir-backend/internal/domain/errors"
	"github.com/rafabene/gymdir-backend/internal/domain/ports"
	"github.com/rafabene/gymdir-backend/internal/domain/repositories"
)

// fakeUserRepository simula o repositório de usuários em memória, incluindo
// os índices únicos de email e github_id
type fakeUserRepository struct {
	mu     sync.Mutex
	nextID int
	users  map[string]*entities.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: make(map[string]*entities.User)}
}

func (f *fakeUserRepository) Create(ctx context.Context, user *entities.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.users {
		if existing.Email.String() == user.Email.String() {
			return domainerrors.ErrEmailAlreadyExists
		}
	}

	f.nextID++
	clone := *user
	clone.ID = fmt.Sprintf("%024d", f.nextID)
	f.users[clone.ID] = &clone
	user.ID = clone.ID
	return nil
}

func (f *fakeUserRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	clone := *user
	return &clone, nil
}

func (f *fakeUserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, user := range f.users {
		if user.Email.String() == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepository) FindByGithubID(ctx context.Context, githubID string) (*entities.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, user := range f.users {
		if user.GithubID != nil && *user.GithubID == githubID {
			clone := *user
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepository) Update(ctx context.Context, user *entities.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.users[user.ID]; !ok {
		return domainerrors.ErrUserNotFound
	}

	// Índice único parcial em github_id
	if user.GithubID != nil {
		for id, existing := range f.users {
			if id != user.ID && existing.GithubID != nil && *existing.GithubID == *user.GithubID {
				return domainerrors.ErrGithubAlreadyLinked
			}
		}
	}

	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeUserRepository) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.users[id]; !ok {
		return domainerrors.ErrUserNotFound
	}
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepository) List(ctx context.Context, filters repositories.UserFilters) ([]*entities.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	result := make([]*entities.User, 0, len(f.users))
	for _, user := range f.users {
		if filters.Role != nil && user.Role != *filters.Role {
			continue
		}
		clone := *user
		result = append(result, &clone)
	}
	return result, nil
}

// fakeGymRepository simula o repositório de academias com o inventário
// indexado pela chave composta (gym, máquina)
type fakeGymRepository struct {
	mu   sync.Mutex
	gyms map[string]*entities.Gym
}

func newFakeGymRepository() *fakeGymRepository {
	return &fakeGymRepository{gyms: make(map[string]*entities.Gym)}
}

func (f *fakeGymRepository) add(gym *entities.Gym) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gyms[gym.ID] = gym
}

func (f *fakeGymRepository) Create(ctx context.Context, gym *entities.Gym) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	clone := *gym
	if clone.ID == "" {
		clone.ID = fmt.Sprintf("%024d", len(f.gyms)+1)
	}
	f.gyms[clone.ID] = &clone
	gym.ID = clone.ID
	return nil
}

func (f *fakeGymRepository) FindByID(ctx context.Context, id string) (*entities.Gym, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	gym, ok := f.gyms[id]
	if !ok {
		return nil, nil
	}
	clone := *gym
	clone.Inventory = append([]entities.InventoryEntry(nil), gym.Inventory...)
	return &clone, nil
}

func (f *fakeGymRepository) List(ctx context.Context) ([]*entities.Gym, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	result := make([]*entities.Gym, 0, len(f.gyms))
	for _, gym := range f.gyms {
		clone := *gym
		result = append(result, &clone)
	}
	return result, nil
}

func (f *fakeGymRepository) Update(ctx context.Context, id string, gym *entities.Gym) (*entities.Gym, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.gyms[id]; !ok {
		return nil, domainerrors.ErrGymNotFound
	}
	clone := *gym
	clone.ID = id
	f.gyms[id] = &clone
	return &clone, nil
}

func (f *fakeGymRepository) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.gyms[id]; !ok {
		return domainerrors.ErrGymNotFound
	}
	delete(f.gyms, id)
	return nil
}

func (f *fakeGymRepository) IncrementInventory(ctx context.Context, gymID, machineID string, update repositories.InventoryUpdate) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	gym, ok := f.gyms[gymID]
	if !ok {
		return false, nil
	}

	for i := range gym.Inventory {
		if gym.Inventory[i].MachineID == machineID {
			gym.Inventory[i].Quantity += update.Quantity
			if update.LastServicedAt != nil {
				gym.Inventory[i].LastServicedAt = update.LastServicedAt
			}
			if update.AreaNote != nil {
				gym.Inventory[i].AreaNote = update.AreaNote
			}
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeGymRepository) AppendInventory(ctx context.Context, gymID, machineID string, update repositories.InventoryUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	gym, ok := f.gyms[gymID]
	if !ok {
		return domainerrors.ErrGymNotFound
	}

	for i := range gym.Inventory {
		if gym.Inventory[i].MachineID == machineID {
			return domainerrors.ErrInventoryEntryExists
		}
	}

	gym.Inventory = append(gym.Inventory, entities.InventoryEntry{
		MachineID:      machineID,
		Quantity:       update.Quantity,
		LastServicedAt: update.LastServicedAt,
		AreaNote:       update.AreaNote,
	})
	return nil
}

func (f *fakeGymRepository) FindByMachine(ctx context.Context, machineID string, filters repositories.GymByMachineFilters) ([]*entities.Gym, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	result := make([]*entities.Gym, 0)
	for _, gym := range f.gyms {
		for _, entry := range gym.Inventory {
			if entry.MachineID != machineID {
				continue
			}
			if filters.City != "" && gym.City != filters.City {
				continue
			}
			if filters.Country != "" && gym.Country != filters.Country {
				continue
			}
			clone := *gym
			result = append(result, &clone)
			break
		}
	}
	return result, nil
}

// fakeMachineRepository simula o catálogo de máquinas
type fakeMachineRepository struct {
	mu       sync.Mutex
	machines map[string]*entities.Machine
}

func newFakeMachineRepository() *fakeMachineRepository {
	return &fakeMachineRepository{machines: make(map[string]*entities.Machine)}
}

func (f *fakeMachineRepository) add(machine *entities.Machine) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.machines[machine.ID] = machine
}

func (f *fakeMachineRepository) Create(ctx context.Context, machine *entities.Machine) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	clone := *machine
	if clone.ID == "" {
		clone.ID = fmt.Sprintf("%024d", len(f.machines)+1)
	}
	f.machines[clone.ID] = &clone
	machine.ID = clone.ID
	return nil
}

func (f *fakeMachineRepository) FindByID(ctx context.Context, id string) (*entities.Machine, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	machine, ok := f.machines[id]
	if !ok {
		return nil, nil
	}
	clone := *machine
	return &clone, nil
}

func (f *fakeMachineRepository) Exists(ctx context.Context, id string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	_, ok := f.machines[id]
	return ok, nil
}

func (f *fakeMachineRepository) Update(ctx context.Context, id string, machine *entities.Machine) (*entities.Machine, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.machines[id]; !ok {
		return nil, domainerrors.ErrMachineNotFound
	}
	clone := *machine
	clone.ID = id
	f.machines[id] = &clone
	return &clone, nil
}

func (f *fakeMachineRepository) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.machines[id]; !ok {
		return domainerrors.ErrMachineNotFound
	}
	delete(f.machines, id)
	return nil
}

func (f *fakeMachineRepository) Search(ctx context.Context, filters repositories.MachineFilters) ([]*entities.Machine, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	result := make([]*entities.Machine, 0)
	for _, machine := range f.machines {
		clone := *machine
		result = append(result, &clone)
	}
	return result, nil
}

func (f *fakeMachineRepository) List(ctx context.Context, page repositories.MachinePage) ([]*entities.Machine, int64, error) {
	machines, err := f.Search(ctx, repositories.MachineFilters{})
	if err != nil {
		return nil, 0, err
	}
	return machines, int64(len(machines)), nil
}

// fakeUnitOfWork executa a função diretamente, sem transação real
type fakeUnitOfWork struct{}

func (fakeUnitOfWork) Begin(ctx context.Context) (context.Context, error) { return ctx, nil }
func (fakeUnitOfWork) Commit(ctx context.Context) error                   { return nil }
func (fakeUnitOfWork) Rollback(ctx context.Context) error                 { return nil }
func (fakeUnitOfWork) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

// noopLogger descarta os logs durante os testes
type noopLogger struct{}

func (noopLogger) Info(msg string, args ...any)    {}
func (noopLogger) Error(msg string, args ...any)   {}
func (noopLogger) Debug(msg string, args ...any)   {}
func (noopLogger) Warn(msg string, args ...any)    {}
func (l noopLogger) With(args ...any) ports.Logger { return l }
