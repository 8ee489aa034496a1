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

// GymRepository implementa repositories.GymRepository
type GymRepository struct {
	db *gorm.DB
}

// NewGymRepository cria um novo GymRepository
func NewGymRepository(db *gorm.DB) repositories.GymRepository {
	return &GymRepository{db: db}
}

func (r *GymRepository) Create(ctx context.Context, gym *entities.Gym) error {
	model := r.toModel(gym)

	db := dbFromContext(ctx, r.db)

	// Treinadores afiliados são referências a registros existentes: os
	// vínculos são inseridos direto na tabela de junção para não fazer
	// upsert dos perfis
	if err := db.Omit("Trainers").Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return domainerrors.ErrMachineNotFound
		}
		return err
	}

	for _, trainer := range gym.Trainers {
		err := db.Exec(
			"INSERT INTO gym_trainers (gym_id, trainer_id) VALUES (?, ?)",
			model.ID, trainer.ID,
		).Error
		if err != nil {
			if errors.Is(err, gorm.ErrForeignKeyViolated) {
				return domainerrors.ErrTrainerNotFound
			}
			return err
		}
	}

	gym.ID = model.ID
	gym.CreatedAt = time.Unix(model.CreatedAt, 0)
	gym.UpdatedAt = time.Unix(model.UpdatedAt, 0)
	return nil
}

func (r *GymRepository) FindByID(ctx context.Context, id string) (*entities.Gym, error) {
	var model GymModel

	db := dbFromContext(ctx, r.db)
	err := db.
		Preload("Inventory.Machine").
		Preload("Trainers").
		Where("id = ?", id).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *GymRepository) List(ctx context.Context) ([]*entities.Gym, error) {
	var models []*GymModel

	db := dbFromContext(ctx, r.db)
	if err := db.Preload("Inventory").Order("name ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	return r.toEntities(models), nil
}

func (r *GymRepository) Update(ctx context.Context, id string, gym *entities.Gym) (*entities.Gym, error) {
	db := dbFromContext(ctx, r.db)

	model := r.toModel(gym)
	model.ID = id

	// O inventário é gerenciado exclusivamente pelo merge engine e os
	// vínculos de treinadores pela tabela de junção; aqui somente as
	// colunas escalares são atualizadas
	result := db.Model(&GymModel{}).
		Where("id = ?", id).
		Select("*").
		Omit("id", "created_at", clause.Associations).
		Updates(model)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, domainerrors.ErrGymNotFound
	}

	return r.FindByID(ctx, id)
}

func (r *GymRepository) Delete(ctx context.Context, id string) error {
	db := dbFromContext(ctx, r.db)
	result := db.Where("id = ?", id).Delete(&GymModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrGymNotFound
	}
	return nil
}

func (r *GymRepository) IncrementInventory(ctx context.Context, gymID, machineID string, update repositories.InventoryUpdate) (bool, error) {
	db := dbFromContext(ctx, r.db)

	// UPDATE único e atômico: soma a quantidade e sobrescreve os campos
	// de manutenção quando fornecidos
	updates := map[string]interface{}{
		"quantity": gorm.Expr("quantity + ?", update.Quantity),
	}
	if update.LastServicedAt != nil {
		updates["last_serviced_at"] = *update.LastServicedAt
	}
	if update.AreaNote != nil {
		updates["area_note"] = *update.AreaNote
	}

	result := db.Model(&GymMachineModel{}).
		Where("gym_id = ? AND machine_id = ?", gymID, machineID).
		Updates(updates)
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

func (r *GymRepository) AppendInventory(ctx context.Context, gymID, machineID string, update repositories.InventoryUpdate) error {
	db := dbFromContext(ctx, r.db)

	model := &GymMachineModel{
		GymID:          gymID,
		MachineID:      machineID,
		Quantity:       update.Quantity,
		LastServicedAt: update.LastServicedAt,
		AreaNote:       update.AreaNote,
	}

	if err := db.Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Outra requisição inseriu a mesma máquina primeiro
			return domainerrors.ErrInventoryEntryExists
		}
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			// A existência da máquina é verificada antes do merge, então
			// a FK violada aqui é a da academia
			return domainerrors.ErrGymNotFound
		}
		return err
	}

	return nil
}

func (r *GymRepository) FindByMachine(ctx context.Context, machineID string, filters repositories.GymByMachineFilters) ([]*entities.Gym, error) {
	var models []*GymModel

	db := dbFromContext(ctx, r.db)
	query := db.Model(&GymModel{}).
		Joins("JOIN gym_machines gm ON gm.gym_id = gyms.id").
		Where("gm.machine_id = ?", machineID)

	if filters.City != "" {
		query = query.Where("gyms.city = ?", filters.City)
	}
	if filters.Country != "" {
		query = query.Where("gyms.country = ?", filters.Country)
	}

	err := query.
		Preload("Inventory.Machine").
		Order("gyms.name ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	return r.toEntities(models), nil
}

// Conversores

func (r *GymRepository) toModel(gym *entities.Gym) *GymModel {
	hours := make([]OpeningHoursModel, len(gym.OpeningHours))
	for i, h := range gym.OpeningHours {
		hours[i] = OpeningHoursModel(h)
	}

	inventory := make([]GymMachineModel, len(gym.Inventory))
	for i, entry := range gym.Inventory {
		inventory[i] = GymMachineModel{
			MachineID:      entry.MachineID,
			Quantity:       entry.Quantity,
			LastServicedAt: entry.LastServicedAt,
			AreaNote:       entry.AreaNote,
		}
	}

	model := &GymModel{
		ID:           gym.ID,
		Name:         gym.Name,
		Street:       gym.Street,
		City:         gym.City,
		State:        gym.State,
		PostalCode:   gym.PostalCode,
		Country:      gym.Country,
		Longitude:    gym.Longitude,
		Latitude:     gym.Latitude,
		Amenities:    gym.Amenities,
		OpeningHours: hours,
		Phone:        gym.Phone,
		Email:        gym.Email,
		Website:      gym.Website,
		PriceTier:    string(gym.PriceTier),
		RatingAvg:    gym.RatingAvg,
		RatingCount:  gym.RatingCount,
		Inventory:    inventory,
	}

	// Deixa autoCreateTime/autoUpdateTime preencherem registros novos
	if !gym.CreatedAt.IsZero() {
		model.CreatedAt = gym.CreatedAt.Unix()
	}
	if !gym.UpdatedAt.IsZero() {
		model.UpdatedAt = gym.UpdatedAt.Unix()
	}

	return model
}

func (r *GymRepository) toEntity(model *GymModel) *entities.Gym {
	hours := make([]entities.OpeningHours, len(model.OpeningHours))
	for i, h := range model.OpeningHours {
		hours[i] = entities.OpeningHours(h)
	}

	inventory := make([]entities.InventoryEntry, len(model.Inventory))
	for i, entry := range model.Inventory {
		inventory[i] = entities.InventoryEntry{
			MachineID:      entry.MachineID,
			Quantity:       entry.Quantity,
			LastServicedAt: entry.LastServicedAt,
			AreaNote:       entry.AreaNote,
		}
		if entry.Machine != nil {
			inventory[i].Machine = &entities.MachineSummary{
				ID:    entry.Machine.ID,
				Name:  entry.Machine.Name,
				Brand: entry.Machine.Brand,
				Type:  entities.MachineType(entry.Machine.Type),
			}
		}
	}

	trainers := make([]entities.TrainerSummary, len(model.Trainers))
	for i, trainer := range model.Trainers {
		trainers[i] = entities.TrainerSummary{
			ID:          trainer.ID,
			Headline:    trainer.Headline,
			RatingAvg:   trainer.RatingAvg,
			RatingCount: trainer.RatingCount,
			UserID:      trainer.UserID,
		}
	}

	return &entities.Gym{
		ID:           model.ID,
		Name:         model.Name,
		Street:       model.Street,
		City:         model.City,
		State:        model.State,
		PostalCode:   model.PostalCode,
		Country:      model.Country,
		Longitude:    model.Longitude,
		Latitude:     model.Latitude,
		Amenities:    model.Amenities,
		OpeningHours: hours,
		Phone:        model.Phone,
		Email:        model.Email,
		Website:      model.Website,
		PriceTier:    entities.PriceTier(model.PriceTier),
		RatingAvg:    model.RatingAvg,
		RatingCount:  model.RatingCount,
		Inventory:    inventory,
		Trainers:     trainers,
		CreatedAt:    time.Unix(model.CreatedAt, 0),
		UpdatedAt:    time.Unix(model.UpdatedAt, 0),
	}
}

func (r *GymRepository) toEntities(models []*GymModel) []*entities.Gym {
	result := make([]*entities.Gym, 0, len(models))
	for _, model := range models {
		result = append(result, r.toEntity(model))
	}
	return result
}
