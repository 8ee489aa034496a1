package entities

import (
	"errors"
	"time"
)

// Especialidades conhecidas para treinadores
var ValidSpecialties = []string{
	"strength", "hypertrophy", "weight_loss", "powerlifting",
	"olympic_lifting", "mobility", "rehab", "endurance",
	"functional", "prenatal", "senior_fitness", "sports_performance",
}

// Modos de treino oferecidos
var ValidTrainingModes = []string{"in_person", "online", "hybrid"}

// GymRef é uma referência resumida a uma academia afiliada
type GymRef struct {
	ID        string
	Name      string
	City      string
	Country   string
	RatingAvg float64
}

// UserRef é uma referência resumida ao usuário dono do perfil
type UserRef struct {
	ID        string
	FirstName string
	LastName  string
	City      string
	Country   string
	AvatarURL *string
}

// Trainer é a extensão de perfil de um User representando um profissional.
// Cada usuário possui no máximo um perfil de treinador.
type Trainer struct {
	ID              string
	UserID          string
	User            *UserRef
	Headline        string
	YearsExperience int
	Certifications  []string
	Specialties     []string
	HourlyRate      float64
	TrainingModes   []string
	Languages       []string
	RatingAvg       float64
	RatingCount     int
	BaseCity        string
	BaseCountry     string
	GymAffiliations []GymRef
	IsVerified      bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// HasAnySpecialty verifica interseção com o conjunto pedido (semântica OR)
func (t *Trainer) HasAnySpecialty(wanted []string) bool {
	if len(wanted) == 0 {
		return true
	}
	for _, w := range wanted {
		for _, s := range t.Specialties {
			if s == w {
				return true
			}
		}
	}
	return false
}

// Validate valida regras de negócio da entidade Trainer
func (t *Trainer) Validate() error {
	if t.UserID == "" {
		return errors.New("user reference is required")
	}

	if t.YearsExperience < 0 || t.YearsExperience > 60 {
		return errors.New("yearsExperience must be between 0 and 60")
	}

	if t.HourlyRate < 0 {
		return errors.New("hourlyRate must be >= 0")
	}

	if t.RatingAvg < 0 || t.RatingAvg > 5 {
		return errors.New("ratingAvg must be between 0 and 5")
	}

	return nil
}
