package entities

import (
	"errors"
	"time"
)

// PriceTier representa a faixa de preço de uma academia
type PriceTier string

const (
	PriceTierBudget   PriceTier = "$"
	PriceTierStandard PriceTier = "$$"
	PriceTierPremium  PriceTier = "$$$"
)

// Amenities conhecidas para academias
var ValidAmenities = []string{
	"sauna", "steam_room", "pool", "spa", "showers", "lockers", "towels",
	"parking", "childcare", "cafe", "wheelchair_access", "wifi", "classes",
	"climbing_wall", "boxing_ring", "basketball_court", "open_24_7",
}

// OpeningHours representa o horário de funcionamento em um dia da semana
type OpeningHours struct {
	Day   string `json:"day"`
	Open  string `json:"open"`
	Close string `json:"close"`
}

// InventoryEntry representa uma máquina no inventário de uma academia.
// A referência é única por academia: nunca existem duas entradas para a
// mesma máquina.
type InventoryEntry struct {
	MachineID      string
	Machine        *MachineSummary
	Quantity       int
	LastServicedAt *time.Time
	AreaNote       *string
}

// MachineSummary são os campos de máquina resolvidos para exibição
type MachineSummary struct {
	ID    string
	Name  string
	Brand string
	Type  MachineType
}

// TrainerSummary são os campos de treinador resolvidos para exibição
type TrainerSummary struct {
	ID          string
	Headline    string
	RatingAvg   float64
	RatingCount int
	UserID      string
}

// Gym representa uma academia com inventário de máquinas e treinadores afiliados
type Gym struct {
	ID           string
	Name         string
	Street       string
	City         string
	State        string
	PostalCode   string
	Country      string
	Longitude    float64
	Latitude     float64
	Amenities    []string
	OpeningHours []OpeningHours
	Phone        string
	Email        string
	Website      string
	PriceTier    PriceTier
	RatingAvg    float64
	RatingCount  int
	Inventory    []InventoryEntry
	Trainers     []TrainerSummary
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// InventoryEntryFor retorna a entrada de inventário da máquina, se existir
func (g *Gym) InventoryEntryFor(machineID string) *InventoryEntry {
	for i := range g.Inventory {
		if g.Inventory[i].MachineID == machineID {
			return &g.Inventory[i]
		}
	}
	return nil
}

// Validate valida regras de negócio da entidade Gym
func (g *Gym) Validate() error {
	if g.Name == "" {
		return errors.New("name is required")
	}

	if g.Longitude < -180 || g.Longitude > 180 {
		return errors.New("longitude out of range")
	}
	if g.Latitude < -90 || g.Latitude > 90 {
		return errors.New("latitude out of range")
	}

	for _, entry := range g.Inventory {
		if entry.Quantity < 0 {
			return errors.New("inventory quantity must be >= 0")
		}
	}

	return nil
}
