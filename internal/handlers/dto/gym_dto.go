package dto

import (
	"time"

	"github.com/rafabene/gymdir-backend/internal/domain/entities"
)

// OpeningHoursDTO representa o horário de um dia da semana
type OpeningHoursDTO struct {
	Day   string `json:"day" binding:"required,oneof=mon tue wed thu fri sat sun"`
	Open  string `json:"open" binding:"required"`
	Close string `json:"close" binding:"required"`
}

// CreateGymRequest representa a requisição para criar uma academia
type CreateGymRequest struct {
	Name         string            `json:"name" binding:"required,min=2,max=120"`
	Street       string            `json:"street" binding:"omitempty,max=120"`
	City         string            `json:"city" binding:"omitempty,max=80"`
	State        string            `json:"state" binding:"omitempty,max=80"`
	PostalCode   string            `json:"postalCode" binding:"omitempty,max=20"`
	Country      string            `json:"country" binding:"omitempty,max=80"`
	Longitude    float64           `json:"longitude" binding:"omitempty,gte=-180,lte=180"`
	Latitude     float64           `json:"latitude" binding:"omitempty,gte=-90,lte=90"`
	Amenities    []string          `json:"amenities" binding:"omitempty,dive,amenity"`
	OpeningHours []OpeningHoursDTO `json:"openingHours" binding:"omitempty,dive"`
	Phone        string            `json:"phone" binding:"omitempty,max=40"`
	Email        string            `json:"email" binding:"omitempty,email"`
	Website      string            `json:"website" binding:"omitempty,url,max=255"`
	PriceTier    string            `json:"priceTier" binding:"omitempty,oneof=$ $$ $$$"`
}

// UpdateGymRequest representa a requisição para atualizar uma academia
type UpdateGymRequest = CreateGymRequest

// LinkMachineRequest representa a requisição de vinculação de máquina ao
// inventário de uma academia
type LinkMachineRequest struct {
	GymID          string     `json:"gymId" binding:"required,objectid"`
	MachineID      string     `json:"machineId" binding:"required,objectid"`
	Quantity       *int       `json:"quantity" binding:"omitempty,min=1"`
	LastServicedAt *time.Time `json:"lastServicedAt" binding:"omitempty"`
	AreaNote       *string    `json:"areaNote" binding:"omitempty,max=200"`
}

// InventoryEntryResponse representa uma entrada de inventário com o resumo
// da máquina resolvido
type InventoryEntryResponse struct {
	Machine        *MachineSummaryResponse `json:"machine,omitempty"`
	MachineID      string                  `json:"machineId"`
	Quantity       int                     `json:"quantity"`
	LastServicedAt *time.Time              `json:"lastServicedAt,omitempty"`
	AreaNote       *string                 `json:"areaNote,omitempty"`
}

// MachineSummaryResponse são os campos resumidos de máquina no inventário
type MachineSummaryResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Brand string `json:"brand,omitempty"`
	Type  string `json:"type"`
}

// TrainerSummaryResponse são os campos resumidos de treinador afiliado
type TrainerSummaryResponse struct {
	ID          string  `json:"id"`
	UserID      string  `json:"userId"`
	Headline    string  `json:"headline,omitempty"`
	RatingAvg   float64 `json:"ratingAvg"`
	RatingCount int     `json:"ratingCount"`
}

// GymResponse representa a resposta de uma academia
type GymResponse struct {
	ID           string                   `json:"id"`
	Name         string                   `json:"name"`
	Street       string                   `json:"street,omitempty"`
	City         string                   `json:"city,omitempty"`
	State        string                   `json:"state,omitempty"`
	PostalCode   string                   `json:"postalCode,omitempty"`
	Country      string                   `json:"country,omitempty"`
	Longitude    float64                  `json:"longitude"`
	Latitude     float64                  `json:"latitude"`
	Amenities    []string                 `json:"amenities,omitempty"`
	OpeningHours []OpeningHoursDTO        `json:"openingHours,omitempty"`
	Phone        string                   `json:"phone,omitempty"`
	Email        string                   `json:"email,omitempty"`
	Website      string                   `json:"website,omitempty"`
	PriceTier    string                   `json:"priceTier"`
	RatingAvg    float64                  `json:"ratingAvg"`
	RatingCount  int                      `json:"ratingCount"`
	Inventory    []InventoryEntryResponse `json:"inventory"`
	Trainers     []TrainerSummaryResponse `json:"trainers"`
	CreatedAt    time.Time                `json:"createdAt"`
	UpdatedAt    time.Time                `json:"updatedAt"`
}

// ToGymEntity converte a requisição para a entidade Gym
func (r *CreateGymRequest) ToGymEntity() *entities.Gym {
	gym := &entities.Gym{
		Name:       r.Name,
		Street:     r.Street,
		City:       r.City,
		State:      r.State,
		PostalCode: r.PostalCode,
		Country:    r.Country,
		Longitude:  r.Longitude,
		Latitude:   r.Latitude,
		Amenities:  r.Amenities,
		Phone:      r.Phone,
		Email:      r.Email,
		Website:    r.Website,
		PriceTier:  entities.PriceTier(r.PriceTier),
	}
	if gym.PriceTier == "" {
		gym.PriceTier = entities.PriceTierStandard
	}
	for _, oh := range r.OpeningHours {
		gym.OpeningHours = append(gym.OpeningHours, entities.OpeningHours{
			Day:   oh.Day,
			Open:  oh.Open,
			Close: oh.Close,
		})
	}
	return gym
}

// ToGymResponse converte uma entidade Gym para GymResponse
func ToGymResponse(gym *entities.Gym) GymResponse {
	response := GymResponse{
		ID:          gym.ID,
		Name:        gym.Name,
		Street:      gym.Street,
		City:        gym.City,
		State:       gym.State,
		PostalCode:  gym.PostalCode,
		Country:     gym.Country,
		Longitude:   gym.Longitude,
		Latitude:    gym.Latitude,
		Amenities:   gym.Amenities,
		Phone:       gym.Phone,
		Email:       gym.Email,
		Website:     gym.Website,
		PriceTier:   string(gym.PriceTier),
		RatingAvg:   gym.RatingAvg,
		RatingCount: gym.RatingCount,
		Inventory:   make([]InventoryEntryResponse, 0, len(gym.Inventory)),
		Trainers:    make([]TrainerSummaryResponse, 0, len(gym.Trainers)),
		CreatedAt:   gym.CreatedAt,
		UpdatedAt:   gym.UpdatedAt,
	}

	for _, oh := range gym.OpeningHours {
		response.OpeningHours = append(response.OpeningHours, OpeningHoursDTO{
			Day:   oh.Day,
			Open:  oh.Open,
			Close: oh.Close,
		})
	}

	for _, entry := range gym.Inventory {
		item := InventoryEntryResponse{
			MachineID:      entry.MachineID,
			Quantity:       entry.Quantity,
			LastServicedAt: entry.LastServicedAt,
			AreaNote:       entry.AreaNote,
		}
		if entry.Machine != nil {
			item.Machine = &MachineSummaryResponse{
				ID:    entry.Machine.ID,
				Name:  entry.Machine.Name,
				Brand: entry.Machine.Brand,
				Type:  string(entry.Machine.Type),
			}
		}
		response.Inventory = append(response.Inventory, item)
	}

	for _, trainer := range gym.Trainers {
		response.Trainers = append(response.Trainers, TrainerSummaryResponse{
			ID:          trainer.ID,
			UserID:      trainer.UserID,
			Headline:    trainer.Headline,
			RatingAvg:   trainer.RatingAvg,
			RatingCount: trainer.RatingCount,
		})
	}

	return response
}

// ToGymResponses converte uma lista de entidades Gym para GymResponse
func ToGymResponses(gyms []*entities.Gym) []GymResponse {
	responses := make([]GymResponse, len(gyms))
	for i, gym := range gyms {
		responses[i] = ToGymResponse(gym)
	}
	return responses
}
