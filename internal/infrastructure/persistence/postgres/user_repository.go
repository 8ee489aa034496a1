package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/rafabene/gymdir-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/gymdir-backend/internal/domain/errors"
	"github.com/rafabene/gymdir-backend/internal/domain/repositories"
	"github.com/rafabene/gymdir-backend/internal/domain/valueobjects"
)

// UserRepository implementa repositories.UserRepository
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository cria um novo UserRepository
func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	model := r.toModel(user)

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrEmailAlreadyExists
		}
		return err
	}

	user.ID = model.ID
	user.CreatedAt = time.Unix(model.CreatedAt, 0)
	user.UpdatedAt = time.Unix(model.UpdatedAt, 0)
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	var model UserModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	var model UserModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("email = ?", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

func (r *UserRepository) FindByGithubID(ctx context.Context, githubID string) (*entities.User, error) {
	var model UserModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("github_id = ?", githubID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

func (r *UserRepository) Update(ctx context.Context, user *entities.User) error {
	model := r.toModel(user)

	db := dbFromContext(ctx, r.db)
	if err := db.Save(model).Error; err != nil {
		// Corrida de vinculação duplicada: índice único parcial em github_id
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrGithubAlreadyLinked
		}
		return err
	}

	user.UpdatedAt = time.Unix(model.UpdatedAt, 0)
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	db := dbFromContext(ctx, r.db)
	result := db.Where("id = ?", id).Delete(&UserModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) List(ctx context.Context, filters repositories.UserFilters) ([]*entities.User, error) {
	var models []*UserModel

	db := dbFromContext(ctx, r.db)
	query := db.Model(&UserModel{})

	if filters.Role != nil {
		query = query.Where("role = ?", string(*filters.Role))
	}

	// Paginação
	page := filters.Page
	if page < 1 {
		page = 1
	}
	pageSize := filters.PageSize
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}

	offset := (page - 1) * pageSize
	query = query.Order("created_at DESC").Limit(pageSize).Offset(offset)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.toEntities(models)
}

// Conversores

func (r *UserRepository) toModel(user *entities.User) *UserModel {
	times := make([]string, len(user.PreferredWorkoutTimes))
	for i, wt := range user.PreferredWorkoutTimes {
		times[i] = string(wt)
	}

	model := &UserModel{
		ID:                    user.ID,
		FirstName:             user.FirstName,
		LastName:              user.LastName,
		Email:                 user.Email.String(),
		PasswordHash:          user.PasswordHash,
		Role:                  string(user.Role),
		GithubID:              user.GithubID,
		AvatarURL:             user.AvatarURL,
		Bio:                   user.Bio,
		City:                  user.City,
		Country:               user.Country,
		Goals:                 user.Goals,
		PreferredWorkoutTimes: times,
	}

	// Deixa autoCreateTime/autoUpdateTime preencherem registros novos
	if !user.CreatedAt.IsZero() {
		model.CreatedAt = user.CreatedAt.Unix()
	}
	if !user.UpdatedAt.IsZero() {
		model.UpdatedAt = user.UpdatedAt.Unix()
	}

	return model
}

func (r *UserRepository) toEntity(model *UserModel) (*entities.User, error) {
	email, err := valueobjects.NewEmail(model.Email)
	if err != nil {
		return nil, err
	}

	times := make([]entities.WorkoutTime, len(model.PreferredWorkoutTimes))
	for i, wt := range model.PreferredWorkoutTimes {
		times[i] = entities.WorkoutTime(wt)
	}

	return &entities.User{
		ID:                    model.ID,
		FirstName:             model.FirstName,
		LastName:              model.LastName,
		Email:                 email,
		PasswordHash:          model.PasswordHash,
		Role:                  entities.Role(model.Role),
		GithubID:              model.GithubID,
		AvatarURL:             model.AvatarURL,
		Bio:                   model.Bio,
		City:                  model.City,
		Country:               model.Country,
		Goals:                 model.Goals,
		PreferredWorkoutTimes: times,
		CreatedAt:             time.Unix(model.CreatedAt, 0),
		UpdatedAt:             time.Unix(model.UpdatedAt, 0),
	}, nil
}

func (r *UserRepository) toEntities(models []*UserModel) ([]*entities.User, error) {
	result := make([]*entities.User, 0, len(models))

	for _, model := range models {
		entity, err := r.toEntity(model)
		if err != nil {
			return nil, err
		}
		result = append(result, entity)
	}

	return result, nil
}
