package dto

import (
	"time"

	"github.com/rafabene/gymdir-backend/internal/domain/entities"
)

// CreateTrainerRequest representa a requisição para criar o perfil de
// treinador do usuário autenticado
type CreateTrainerRequest struct {
	Headline        string   `json:"headline" binding:"omitempty,max=120"`
	YearsExperience int      `json:"yearsExperience" binding:"omitempty,gte=0,lte=60"`
	Certifications  []string `json:"certifications" binding:"omitempty,dive,max=80"`
	Specialties     []string `json:"specialties" binding:"omitempty,dive,specialty"`
	HourlyRate      float64  `json:"hourlyRate" binding:"omitempty,gte=0"`
	TrainingModes   []string `json:"trainingModes" binding:"omitempty,dive,training_mode"`
	Languages       []string `json:"languages" binding:"omitempty,dive,max=40"`
	BaseCity        string   `json:"baseCity" binding:"omitempty,max=80"`
	BaseCountry     string   `json:"baseCountry" binding:"omitempty,max=80"`
}

// UpdateTrainerRequest representa a requisição para atualizar o perfil
type UpdateTrainerRequest = CreateTrainerRequest

// UserRefResponse são os campos resumidos do usuário dono do perfil
type UserRefResponse struct {
	ID        string  `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	City      string  `json:"city,omitempty"`
	Country   string  `json:"country,omitempty"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
}

// GymRefResponse são os campos resumidos de uma academia afiliada
type GymRefResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	City      string  `json:"city,omitempty"`
	Country   string  `json:"country,omitempty"`
	RatingAvg float64 `json:"ratingAvg"`
}

// TrainerResponse representa a resposta de um perfil de treinador
type TrainerResponse struct {
	ID              string           `json:"id"`
	UserID          string           `json:"userId"`
	User            *UserRefResponse `json:"user,omitempty"`
	Headline        string           `json:"headline,omitempty"`
	YearsExperience int              `json:"yearsExperience"`
	Certifications  []string         `json:"certifications,omitempty"`
	Specialties     []string         `json:"specialties,omitempty"`
	HourlyRate      float64          `json:"hourlyRate"`
	TrainingModes   []string         `json:"trainingModes,omitempty"`
	Languages       []string         `json:"languages,omitempty"`
	RatingAvg       float64          `json:"ratingAvg"`
	RatingCount     int              `json:"ratingCount"`
	BaseCity        string           `json:"baseCity,omitempty"`
	BaseCountry     string           `json:"baseCountry,omitempty"`
	GymAffiliations []GymRefResponse `json:"gymAffiliations"`
	IsVerified      bool             `json:"isVerified"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

// ToTrainerEntity converte a requisição para a entidade Trainer
func (r *CreateTrainerRequest) ToTrainerEntity(userID string) *entities.Trainer {
	return &entities.Trainer{
		UserID:          userID,
		Headline:        r.Headline,
		YearsExperience: r.YearsExperience,
		Certifications:  r.Certifications,
		Specialties:     r.Specialties,
		HourlyRate:      r.HourlyRate,
		TrainingModes:   r.TrainingModes,
		Languages:       r.Languages,
		BaseCity:        r.BaseCity,
		BaseCountry:     r.BaseCountry,
	}
}

// ToTrainerResponse converte uma entidade Trainer para TrainerResponse
func ToTrainerResponse(trainer *entities.Trainer) TrainerResponse {
	response := TrainerResponse{
		ID:              trainer.ID,
		UserID:          trainer.UserID,
		Headline:        trainer.Headline,
		YearsExperience: trainer.YearsExperience,
		Certifications:  trainer.Certifications,
		Specialties:     trainer.Specialties,
		HourlyRate:      trainer.HourlyRate,
		TrainingModes:   trainer.TrainingModes,
		Languages:       trainer.Languages,
		RatingAvg:       trainer.RatingAvg,
		RatingCount:     trainer.RatingCount,
		BaseCity:        trainer.BaseCity,
		BaseCountry:     trainer.BaseCountry,
		GymAffiliations: make([]GymRefResponse, 0, len(trainer.GymAffiliations)),
		IsVerified:      trainer.IsVerified,
		CreatedAt:       trainer.CreatedAt,
		UpdatedAt:       trainer.UpdatedAt,
	}

	if trainer.User != nil {
		response.User = &UserRefResponse{
			ID:        trainer.User.ID,
			FirstName: trainer.User.FirstName,
			LastName:  trainer.User.LastName,
			City:      trainer.User.City,
			Country:   trainer.User.Country,
			AvatarURL: trainer.User.AvatarURL,
		}
	}

	for _, gym := range trainer.GymAffiliations {
		response.GymAffiliations = append(response.GymAffiliations, GymRefResponse{
			ID:        gym.ID,
			Name:      gym.Name,
			City:      gym.City,
			Country:   gym.Country,
			RatingAvg: gym.RatingAvg,
		})
	}

	return response
}

// ToTrainerResponses converte uma lista de entidades Trainer
func ToTrainerResponses(trainers []*entities.Trainer) []TrainerResponse {
	responses := make([]TrainerResponse, len(trainers))
	for i, trainer := range trainers {
		responses[i] = ToTrainerResponse(trainer)
	}
	return responses
}
