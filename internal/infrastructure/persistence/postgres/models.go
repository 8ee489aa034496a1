package postgres

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"gorm.io/gorm"
)

// Identificadores são ObjectIDs de 24 caracteres hex gerados na aplicação,
// preservando o formato de id exposto pela API.

// UserModel é o model GORM para usuários
type UserModel struct {
	ID                    string   `gorm:"type:char(24);primaryKey"`
	FirstName             string   `gorm:"type:varchar(50);not null"`
	LastName              string   `gorm:"type:varchar(50);not null"`
	Email                 string   `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash          string   `gorm:"type:varchar(255)"`
	Role                  string   `gorm:"type:varchar(50);not null;index"`
	GithubID              *string  `gorm:"type:varchar(64);uniqueIndex:idx_users_github_id,where:github_id IS NOT NULL"`
	AvatarURL             *string  `gorm:"type:varchar(500)"`
	Bio                   string   `gorm:"type:varchar(1000)"`
	City                  string   `gorm:"type:varchar(80);index"`
	Country               string   `gorm:"type:varchar(80);index"`
	Goals                 []string `gorm:"serializer:json;type:text"`
	PreferredWorkoutTimes []string `gorm:"serializer:json;type:text"`
	CreatedAt             int64    `gorm:"autoCreateTime;index"`
	UpdatedAt             int64    `gorm:"autoUpdateTime"`
}

func (UserModel) TableName() string {
	return "users"
}

func (m *UserModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = primitive.NewObjectID().Hex()
	}
	return nil
}

// OpeningHoursModel é serializado como JSON dentro da coluna opening_hours
type OpeningHoursModel struct {
	Day   string `json:"day"`
	Open  string `json:"open"`
	Close string `json:"close"`
}

// GymModel é o model GORM para academias
type GymModel struct {
	ID           string              `gorm:"type:char(24);primaryKey"`
	Name         string              `gorm:"type:varchar(120);not null;index"`
	Street       string              `gorm:"type:varchar(120)"`
	City         string              `gorm:"type:varchar(80);index"`
	State        string              `gorm:"type:varchar(80)"`
	PostalCode   string              `gorm:"type:varchar(20)"`
	Country      string              `gorm:"type:varchar(80);index"`
	Longitude    float64             `gorm:"default:0"`
	Latitude     float64             `gorm:"default:0"`
	Amenities    []string            `gorm:"serializer:json;type:text"`
	OpeningHours []OpeningHoursModel `gorm:"serializer:json;type:text"`
	Phone        string              `gorm:"type:varchar(40)"`
	Email        string              `gorm:"type:varchar(255)"`
	Website      string              `gorm:"type:varchar(255)"`
	PriceTier    string              `gorm:"type:varchar(3);default:'$$'"`
	RatingAvg    float64             `gorm:"default:0"`
	RatingCount  int                 `gorm:"default:0"`
	Inventory    []GymMachineModel   `gorm:"foreignKey:GymID;references:ID;constraint:OnDelete:CASCADE"`
	Trainers     []TrainerModel      `gorm:"many2many:gym_trainers;joinForeignKey:GymID;joinReferences:TrainerID"`
	CreatedAt    int64               `gorm:"autoCreateTime;index"`
	UpdatedAt    int64               `gorm:"autoUpdateTime"`
}

func (GymModel) TableName() string {
	return "gyms"
}

func (m *GymModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = primitive.NewObjectID().Hex()
	}
	return nil
}

// GymMachineModel é uma entrada do inventário de uma academia. A chave
// primária composta (gym_id, machine_id) garante no máximo uma entrada por
// máquina por academia e fecha a corrida do append concorrente.
type GymMachineModel struct {
	GymID          string        `gorm:"type:char(24);primaryKey"`
	MachineID      string        `gorm:"type:char(24);primaryKey"`
	Machine        *MachineModel `gorm:"foreignKey:MachineID;references:ID;constraint:OnDelete:CASCADE"`
	Quantity       int           `gorm:"not null;default:1;check:quantity >= 0"`
	LastServicedAt *time.Time
	AreaNote       *string `gorm:"type:varchar(200)"`
}

func (GymMachineModel) TableName() string {
	return "gym_machines"
}

// MachineModel é o model GORM para o catálogo de máquinas
type MachineModel struct {
	ID                      string   `gorm:"type:char(24);primaryKey"`
	Name                    string   `gorm:"type:varchar(100);not null;index"`
	Brand                   string   `gorm:"type:varchar(100);index"`
	Type                    string   `gorm:"type:varchar(20);not null;index"`
	PrimaryMuscleGroups     []string `gorm:"serializer:json;type:text"`
	ModelNumber             string   `gorm:"type:varchar(80)"`
	IsPlateLoaded           bool     `gorm:"default:false"`
	MaintenanceIntervalDays int      `gorm:"default:180"`
	Notes                   string   `gorm:"type:varchar(1000)"`
	CreatedAt               int64    `gorm:"autoCreateTime"`
	UpdatedAt               int64    `gorm:"autoUpdateTime"`
}

func (MachineModel) TableName() string {
	return "machines"
}

func (m *MachineModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = primitive.NewObjectID().Hex()
	}
	return nil
}

// TrainerModel é o model GORM para perfis de treinador. O índice único em
// user_id garante um perfil por usuário.
type TrainerModel struct {
	ID              string     `gorm:"type:char(24);primaryKey"`
	UserID          string     `gorm:"type:char(24);uniqueIndex;not null"`
	User            *UserModel `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
	Headline        string     `gorm:"type:varchar(120)"`
	YearsExperience int        `gorm:"default:0"`
	Certifications  []string   `gorm:"serializer:json;type:text"`
	Specialties     []string   `gorm:"serializer:json;type:text"`
	HourlyRate      float64    `gorm:"default:0"`
	TrainingModes   []string   `gorm:"serializer:json;type:text"`
	Languages       []string   `gorm:"serializer:json;type:text"`
	RatingAvg       float64    `gorm:"default:0;index"`
	RatingCount     int        `gorm:"default:0"`
	BaseCity        string     `gorm:"type:varchar(80);index"`
	BaseCountry     string     `gorm:"type:varchar(80);index"`
	IsVerified      bool       `gorm:"default:false"`
	Gyms            []GymModel `gorm:"many2many:gym_trainers;joinForeignKey:TrainerID;joinReferences:GymID"`
	CreatedAt       int64      `gorm:"autoCreateTime"`
	UpdatedAt       int64      `gorm:"autoUpdateTime"`
}

func (TrainerModel) TableName() string {
	return "trainers"
}

func (m *TrainerModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = primitive.NewObjectID().Hex()
	}
	return nil
}
