package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rafabene/gymdir-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/gymdir-backend/internal/domain/errors"
	"github.com/rafabene/gymdir-backend/internal/domain/repositories"
)

// TrainerRepository implementa repositories.TrainerRepository
type TrainerRepository struct {
	db *gorm.DB
}

// NewTrainerRepository cria um novo TrainerRepository
func NewTrainerRepository(db *gorm.DB) repositories.TrainerRepository {
	return &TrainerRepository{db: db}
}

func (r *TrainerRepository) CreateForUser(ctx context.Context, trainer *entities.Trainer) error {
	model := r.toModel(trainer)

	db := dbFromContext(ctx, r.db)
	if err := db.Omit("Gyms").Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrTrainerProfileExists
		}
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return domainerrors.ErrUserNotFound
		}
		return err
	}

	trainer.ID = model.ID
	trainer.CreatedAt = time.Unix(model.CreatedAt, 0)
	trainer.UpdatedAt = time.Unix(model.UpdatedAt, 0)
	return nil
}

func (r *TrainerRepository) FindByID(ctx context.Context, id string) (*entities.Trainer, error) {
	var model TrainerModel

	db := dbFromContext(ctx, r.db)
	err := db.Preload("User").Preload("Gyms").Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *TrainerRepository) FindByUserID(ctx context.Context, userID string) (*entities.Trainer, error) {
	var model TrainerModel

	db := dbFromContext(ctx, r.db)
	err := db.Preload("User").Preload("Gyms").Where("user_id = ?", userID).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *TrainerRepository) UpdateForUser(ctx context.Context, userID string, trainer *entities.Trainer) (*entities.Trainer, error) {
	db := dbFromContext(ctx, r.db)

	model := r.toModel(trainer)

	// Campos de reputação e verificação não são atualizáveis pelo dono
	result := db.Model(&TrainerModel{}).
		Where("user_id = ?", userID).
		Select("*").
		Omit("id", "user_id", "rating_avg", "rating_count", "is_verified", "created_at", clause.Associations).
		Updates(model)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, domainerrors.ErrTrainerNotFound
	}

	return r.FindByUserID(ctx, userID)
}

func (r *TrainerRepository) Delete(ctx context.Context, id string) error {
	db := dbFromContext(ctx, r.db)

	result := db.Where("id = ?", id).Delete(&TrainerModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrTrainerNotFound
	}
	return nil
}

func (r *TrainerRepository) List(ctx context.Context, filters repositories.TrainerFilters) ([]*entities.Trainer, error) {
	var models []*TrainerModel

	db := dbFromContext(ctx, r.db)
	query := db.Model(&TrainerModel{}).Preload("User").Preload("Gyms")

	if filters.City != "" {
		query = query.Where("LOWER(base_city) = LOWER(?)", filters.City)
	}
	if filters.Country != "" {
		query = query.Where("LOWER(base_country) = LOWER(?)", filters.Country)
	}
	if filters.MinRating != nil {
		query = query.Where("rating_avg >= ?", *filters.MinRating)
	}

	err := query.
		Order("rating_avg DESC").
		Order("rating_count DESC").
		Order("years_experience DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	// Especialidades ficam serializadas como JSON, então a interseção OR é
	// resolvida em memória após os filtros SQL
	result := make([]*entities.Trainer, 0, len(models))
	for _, model := range models {
		trainer := r.toEntity(model)
		if trainer.HasAnySpecialty(filters.Specialties) {
			result = append(result, trainer)
		}
	}
	return result, nil
}

// Conversores

func (r *TrainerRepository) toModel(trainer *entities.Trainer) *TrainerModel {
	model := &TrainerModel{
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
		IsVerified:      trainer.IsVerified,
	}

	if !trainer.CreatedAt.IsZero() {
		model.CreatedAt = trainer.CreatedAt.Unix()
	}
	if !trainer.UpdatedAt.IsZero() {
		model.UpdatedAt = trainer.UpdatedAt.Unix()
	}

	return model
}

func (r *TrainerRepository) toEntity(model *TrainerModel) *entities.Trainer {
	trainer := &entities.Trainer{
		ID:              model.ID,
		UserID:          model.UserID,
		Headline:        model.Headline,
		YearsExperience: model.YearsExperience,
		Certifications:  model.Certifications,
		Specialties:     model.Specialties,
		HourlyRate:      model.HourlyRate,
		TrainingModes:   model.TrainingModes,
		Languages:       model.Languages,
		RatingAvg:       model.RatingAvg,
		RatingCount:     model.RatingCount,
		BaseCity:        model.BaseCity,
		BaseCountry:     model.BaseCountry,
		IsVerified:      model.IsVerified,
		CreatedAt:       time.Unix(model.CreatedAt, 0),
		UpdatedAt:       time.Unix(model.UpdatedAt, 0),
	}

	if model.User != nil {
		trainer.User = &entities.UserRef{
			ID:        model.User.ID,
			FirstName: model.User.FirstName,
			LastName:  model.User.LastName,
			City:      model.User.City,
			Country:   model.User.Country,
			AvatarURL: model.User.AvatarURL,
		}
	}

	for _, gym := range model.Gyms {
		trainer.GymAffiliations = append(trainer.GymAffiliations, entities.GymRef{
			ID:        gym.ID,
			Name:      gym.Name,
			City:      gym.City,
			Country:   gym.Country,
			RatingAvg: gym.RatingAvg,
		})
	}

	return trainer
}
