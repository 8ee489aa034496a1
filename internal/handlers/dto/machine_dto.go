package dto

import (
	"time"

	"github.com/rafabene/gymdir-backend/internal/domain/entities"
)

// CreateMachineRequest representa a requisição para criar uma máquina
type CreateMachineRequest struct {
	Name                    string   `json:"name" binding:"required,min=2,max=100"`
	Brand                   string   `json:"brand" binding:"omitempty,max=100"`
	Type                    string   `json:"type" binding:"required,oneof=cardio strength mobility functional accessory"`
	PrimaryMuscleGroups     []string `json:"primaryMuscleGroups" binding:"omitempty,dive,max=40"`
	ModelNumber             string   `json:"modelNumber" binding:"omitempty,max=80"`
	IsPlateLoaded           bool     `json:"isPlateLoaded"`
	MaintenanceIntervalDays int      `json:"maintenanceIntervalDays" binding:"omitempty,gte=0"`
	Notes                   string   `json:"notes" binding:"omitempty,max=1000"`
}

// UpdateMachineRequest representa a requisição para atualizar uma máquina
type UpdateMachineRequest = CreateMachineRequest

// MachineResponse representa a resposta de uma máquina
type MachineResponse struct {
	ID                      string    `json:"id"`
	Name                    string    `json:"name"`
	Brand                   string    `json:"brand,omitempty"`
	Type                    string    `json:"type"`
	PrimaryMuscleGroups     []string  `json:"primaryMuscleGroups,omitempty"`
	ModelNumber             string    `json:"modelNumber,omitempty"`
	IsPlateLoaded           bool      `json:"isPlateLoaded"`
	MaintenanceIntervalDays int       `json:"maintenanceIntervalDays"`
	Notes                   string    `json:"notes,omitempty"`
	CreatedAt               time.Time `json:"createdAt"`
	UpdatedAt               time.Time `json:"updatedAt"`
}

// MachineListResponse é a listagem paginada de máquinas
type MachineListResponse struct {
	Items []MachineResponse `json:"items"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}

// ToMachineEntity converte a requisição para a entidade Machine
func (r *CreateMachineRequest) ToMachineEntity() *entities.Machine {
	machine := &entities.Machine{
		Name:                    r.Name,
		Brand:                   r.Brand,
		Type:                    entities.MachineType(r.Type),
		PrimaryMuscleGroups:     r.PrimaryMuscleGroups,
		ModelNumber:             r.ModelNumber,
		IsPlateLoaded:           r.IsPlateLoaded,
		MaintenanceIntervalDays: r.MaintenanceIntervalDays,
		Notes:                   r.Notes,
	}
	if machine.MaintenanceIntervalDays == 0 {
		machine.MaintenanceIntervalDays = 180
	}
	return machine
}

// ToMachineResponse converte uma entidade Machine para MachineResponse
func ToMachineResponse(machine *entities.Machine) MachineResponse {
	return MachineResponse{
		ID:                      machine.ID,
		Name:                    machine.Name,
		Brand:                   machine.Brand,
		Type:                    string(machine.Type),
		PrimaryMuscleGroups:     machine.PrimaryMuscleGroups,
		ModelNumber:             machine.ModelNumber,
		IsPlateLoaded:           machine.IsPlateLoaded,
		MaintenanceIntervalDays: machine.MaintenanceIntervalDays,
		Notes:                   machine.Notes,
		CreatedAt:               machine.CreatedAt,
		UpdatedAt:               machine.UpdatedAt,
	}
}

// ToMachineResponses converte uma lista de entidades Machine
func ToMachineResponses(machines []*entities.Machine) []MachineResponse {
	responses := make([]MachineResponse, len(machines))
	for i, machine := range machines {
		responses[i] = ToMachineResponse(machine)
	}
	return responses
}
