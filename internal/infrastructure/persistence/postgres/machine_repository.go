package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/rafabene/gymdir-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/gymdir-backend/internal/domain/errors"
	"github.com/rafabene/gymdir-backend/internal/domain/repositories"
)

// MachineRepository implementa repositories.MachineRepository
type MachineRepository struct {
	db *gorm.DB
}

// NewMachineRepository cria um novo MachineRepository
func NewMachineRepository(db *gorm.DB) repositories.MachineRepository {
	return &MachineRepository{db: db}
}

func (r *MachineRepository) Create(ctx context.Context, machine *entities.Machine) error {
	model := r.toModel(machine)

	db := dbFromContext(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	machine.ID = model.ID
	machine.CreatedAt = time.Unix(model.CreatedAt, 0)
	machine.UpdatedAt = time.Unix(model.UpdatedAt, 0)
	return nil
}

func (r *MachineRepository) FindByID(ctx context.Context, id string) (*entities.Machine, error) {
	var model MachineModel

	db := dbFromContext(ctx, r.db)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *MachineRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64

	db := dbFromContext(ctx, r.db)
	err := db.Model(&MachineModel{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *MachineRepository) Update(ctx context.Context, id string, machine *entities.Machine) (*entities.Machine, error) {
	db := dbFromContext(ctx, r.db)

	model := r.toModel(machine)
	model.ID = id

	result := db.Model(&MachineModel{}).
		Where("id = ?", id).
		Select("*").
		Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, domainerrors.ErrMachineNotFound
	}

	return r.FindByID(ctx, id)
}

func (r *MachineRepository) Delete(ctx context.Context, id string) error {
	db := dbFromContext(ctx, r.db)
	result := db.Where("id = ?", id).Delete(&MachineModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrMachineNotFound
	}
	return nil
}

func (r *MachineRepository) Search(ctx context.Context, filters repositories.MachineFilters) ([]*entities.Machine, error) {
	var models []*MachineModel

	db := dbFromContext(ctx, r.db)
	query := db.Model(&MachineModel{})

	// Name e Brand casam por substring case-insensitive; Type é exato
	if filters.Name != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filters.Name)+"%")
	}
	if filters.Type != "" {
		query = query.Where("type = ?", string(filters.Type))
	}
	if filters.Brand != "" {
		query = query.Where("LOWER(brand) LIKE ?", "%"+strings.ToLower(filters.Brand)+"%")
	}

	if err := query.Order("name ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	return r.toEntities(models), nil
}

func (r *MachineRepository) List(ctx context.Context, page repositories.MachinePage) ([]*entities.Machine, int64, error) {
	db := dbFromContext(ctx, r.db)

	p := page.Page
	if p < 1 {
		p = 1
	}
	limit := page.Limit
	if limit < 1 {
		limit = 100
	}

	var total int64
	if err := db.Model(&MachineModel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var models []*MachineModel
	err := db.Model(&MachineModel{}).
		Order("name ASC").
		Offset((p - 1) * limit).
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, 0, err
	}

	return r.toEntities(models), total, nil
}

// Conversores

func (r *MachineRepository) toModel(machine *entities.Machine) *MachineModel {
	model := &MachineModel{
		ID:                      machine.ID,
		Name:                    machine.Name,
		Brand:                   machine.Brand,
		Type:                    string(machine.Type),
		PrimaryMuscleGroups:     machine.PrimaryMuscleGroups,
		ModelNumber:             machine.ModelNumber,
		IsPlateLoaded:           machine.IsPlateLoaded,
		MaintenanceIntervalDays: machine.MaintenanceIntervalDays,
		Notes:                   machine.Notes,
	}

	if !machine.CreatedAt.IsZero() {
		model.CreatedAt = machine.CreatedAt.Unix()
	}
	if !machine.UpdatedAt.IsZero() {
		model.UpdatedAt = machine.UpdatedAt.Unix()
	}

	return model
}

func (r *MachineRepository) toEntity(model *MachineModel) *entities.Machine {
	return &entities.Machine{
		ID:                      model.ID,
		Name:                    model.Name,
		Brand:                   model.Brand,
		Type:                    entities.MachineType(model.Type),
		PrimaryMuscleGroups:     model.PrimaryMuscleGroups,
		ModelNumber:             model.ModelNumber,
		IsPlateLoaded:           model.IsPlateLoaded,
		MaintenanceIntervalDays: model.MaintenanceIntervalDays,
		Notes:                   model.Notes,
		CreatedAt:               time.Unix(model.CreatedAt, 0),
		UpdatedAt:               time.Unix(model.UpdatedAt, 0),
	}
}

func (r *MachineRepository) toEntities(models []*MachineModel) []*entities.Machine {
	result := make([]*entities.Machine, 0, len(models))
	for _, model := range models {
		result = append(result, r.toEntity(model))
	}
	return result
}
