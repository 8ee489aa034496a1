package entities

import (
	"errors"
	"time"
)

// MachineType representa a categoria de um equipamento
type MachineType string

const (
	MachineCardio     MachineType = "cardio"
	MachineStrength   MachineType = "strength"
	MachineMobility   MachineType = "mobility"
	MachineFunctional MachineType = "functional"
	MachineAccessory  MachineType = "accessory"
)

// Grupos musculares conhecidos
var ValidMuscleGroups = []string{
	"full_body", "chest", "back", "shoulders", "biceps", "triceps",
	"core", "glutes", "quads", "hamstrings", "calves",
}

// Machine representa um equipamento do catálogo, referenciado (nunca
// possuído) pelos inventários das academias
type Machine struct {
	ID                      string
	Name                    string
	Brand                   string
	Type                    MachineType
	PrimaryMuscleGroups     []string
	ModelNumber             string
	IsPlateLoaded           bool
	MaintenanceIntervalDays int
	Notes                   string
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// IsValid verifica se o tipo é um dos valores conhecidos
func (t MachineType) IsValid() bool {
	switch t {
	case MachineCardio, MachineStrength, MachineMobility, MachineFunctional, MachineAccessory:
		return true
	}
	return false
}

// Summary retorna os campos resumidos usados nas respostas de inventário
func (m *Machine) Summary() *MachineSummary {
	return &MachineSummary{
		ID:    m.ID,
		Name:  m.Name,
		Brand: m.Brand,
		Type:  m.Type,
	}
}

// Validate valida regras de negócio da entidade Machine
func (m *Machine) Validate() error {
	if m.Name == "" {
		return errors.New("name is required")
	}

	if !m.Type.IsValid() {
		return errors.New("invalid machine type")
	}

	if m.MaintenanceIntervalDays < 0 {
		return errors.New("maintenanceIntervalDays must be >= 0")
	}

	return nil
}
