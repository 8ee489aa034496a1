package http

import (
	errs "errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/gymdir-backend/internal/domain/errors"
	"github.com/rafabene/gymdir-backend/internal/domain/repositories"
	"github.com/rafabene/gymdir-backend/internal/handlers/dto"
	"github.com/rafabene/gymdir-backend/internal/handlers/middleware"
	"github.com/rafabene/gymdir-backend/internal/services"
)

// TrainerHandler lida com requisições HTTP de perfis de treinador
type TrainerHandler struct {
	trainerService *services.TrainerService
}

// NewTrainerHandler cria um novo TrainerHandler
func NewTrainerHandler(trainerService *services.TrainerService) *TrainerHandler {
	return &TrainerHandler{
		trainerService: trainerService,
	}
}

// CreateTrainer cria o perfil de treinador do usuário autenticado
//
//	@Summary		Registra o usuário autenticado como treinador
//	@Tags			trainers
//	@Accept			json
//	@Produce		json
//	@Param			trainer	body		dto.CreateTrainerRequest	true	"Dados do perfil"
//	@Success		201		{object}	dto.TrainerResponse
//	@Failure		409		{object}	dto.ErrorResponse
//	@Router			/trainers [post]
func (h *TrainerHandler) CreateTrainer(c *gin.Context) {
	var req dto.CreateTrainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response := dto.BindingErrorResponse(c, err)
		dto.WriteProblem(c, response)
		return
	}

	userID := c.GetString(middleware.UserIDContextKey)

	trainer, err := h.trainerService.CreateTrainer(c.Request.Context(), req.ToTrainerEntity(userID))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTrainerResponse(trainer))
}

// GetTrainer busca um perfil de treinador por ID
//
//	@Summary		Busca um treinador
//	@Tags			trainers
//	@Produce		json
//	@Param			id	path		string	true	"ID do treinador"
//	@Success		200	{object}	dto.TrainerResponse
//	@Failure		404	{object}	dto.ErrorResponse
//	@Router			/trainers/{id} [get]
func (h *TrainerHandler) GetTrainer(c *gin.Context) {
	id := c.Param("id")
	if !dto.IsValidID(id) {
		response := dto.BadRequestErrorResponseI18n(c, errors.ErrInvalidIdentifier.Error())
		dto.WriteProblem(c, response)
		return
	}

	trainer, err := h.trainerService.GetTrainer(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTrainerResponse(trainer))
}

// ListTrainers lista treinadores filtrados e ordenados do melhor avaliado
// para o pior
//
//	@Summary		Lista treinadores
//	@Tags			trainers
//	@Produce		json
//	@Param			city		query	string	false	"Filtro por cidade base"
//	@Param			country		query	string	false	"Filtro por país base"
//	@Param			minRating	query	number	false	"Avaliação mínima"
//	@Param			specialties	query	string	false	"Especialidades separadas por vírgula (basta uma em comum)"
//	@Success		200	{array}	dto.TrainerResponse
//	@Router			/trainers [get]
func (h *TrainerHandler) ListTrainers(c *gin.Context) {
	filters := repositories.TrainerFilters{
		City:    c.Query("city"),
		Country: c.Query("country"),
	}

	if raw := c.Query("minRating"); raw != "" {
		if minRating, err := strconv.ParseFloat(raw, 64); err == nil {
			filters.MinRating = &minRating
		}
	}

	if raw := c.Query("specialties"); raw != "" {
		for _, specialty := range strings.Split(raw, ",") {
			if specialty = strings.TrimSpace(specialty); specialty != "" {
				filters.Specialties = append(filters.Specialties, specialty)
			}
		}
	}

	trainers, err := h.trainerService.ListTrainers(c.Request.Context(), filters)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTrainerResponses(trainers))
}

// GetMyTrainer busca o perfil de treinador do usuário autenticado
//
//	@Summary		Busca o perfil de treinador do usuário autenticado
//	@Tags			trainers
//	@Produce		json
//	@Success		200	{object}	dto.TrainerResponse
//	@Failure		404	{object}	dto.ErrorResponse
//	@Router			/trainers/me [get]
func (h *TrainerHandler) GetMyTrainer(c *gin.Context) {
	userID := c.GetString(middleware.UserIDContextKey)

	trainer, err := h.trainerService.GetTrainerByUser(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTrainerResponse(trainer))
}

// UpdateTrainer atualiza o perfil de treinador do usuário autenticado
//
//	@Summary		Atualiza o perfil de treinador
//	@Tags			trainers
//	@Accept			json
//	@Produce		json
//	@Param			trainer	body		dto.UpdateTrainerRequest	true	"Dados do perfil"
//	@Success		200		{object}	dto.TrainerResponse
//	@Failure		404		{object}	dto.ErrorResponse
//	@Router			/trainers/me [put]
func (h *TrainerHandler) UpdateTrainer(c *gin.Context) {
	var req dto.UpdateTrainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response := dto.BindingErrorResponse(c, err)
		dto.WriteProblem(c, response)
		return
	}

	userID := c.GetString(middleware.UserIDContextKey)

	trainer, err := h.trainerService.UpdateTrainer(c.Request.Context(), userID, req.ToTrainerEntity(userID))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTrainerResponse(trainer))
}

// DeleteTrainer remove um perfil de treinador
//
//	@Summary		Remove um treinador
//	@Tags			trainers
//	@Produce		json
//	@Param			id	path	string	true	"ID do treinador"
//	@Success		200	{object}	map[string]string
//	@Failure		404	{object}	dto.ErrorResponse
//	@Router			/trainers/{id} [delete]
func (h *TrainerHandler) DeleteTrainer(c *gin.Context) {
	id := c.Param("id")
	if !dto.IsValidID(id) {
		response := dto.BadRequestErrorResponseI18n(c, errors.ErrInvalidIdentifier.Error())
		dto.WriteProblem(c, response)
		return
	}

	if err := h.trainerService.DeleteTrainer(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": dto.T(c, "message.trainer_deleted")})
}

func (h *TrainerHandler) handleError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errors.ErrTrainerNotFound):
		response := dto.NotFoundErrorResponseI18n(c, "error.trainer_not_found")
		dto.WriteProblem(c, response)
	case errs.Is(err, errors.ErrUserNotFound):
		response := dto.NotFoundErrorResponseI18n(c, "error.user_not_found")
		dto.WriteProblem(c, response)
	case errs.Is(err, errors.ErrTrainerProfileExists):
		response := dto.ConflictErrorResponseI18n(c, "error.trainer_profile_exists")
		dto.WriteProblem(c, response)
	default:
		response := dto.InternalErrorResponseI18n(c)
		response.Detail = err.Error()
		dto.WriteProblem(c, response)
	}
}
