package http

import (
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/gymdir-backend/internal/domain/errors"
	"github.com/rafabene/gymdir-backend/internal/domain/repositories"
	"github.com/rafabene/gymdir-backend/internal/handlers/dto"
	"github.com/rafabene/gymdir-backend/internal/services"
)

// GymHandler lida com requisições HTTP relacionadas a academias
type GymHandler struct {
	gymService *services.GymService
}

// NewGymHandler cria um novo GymHandler
func NewGymHandler(gymService *services.GymService) *GymHandler {
	return &GymHandler{
		gymService: gymService,
	}
}

// CreateGym cria uma nova academia
//
//	@Summary		Cria uma academia
//	@Tags			gyms
//	@Accept			json
//	@Produce		json
//	@Param			gym	body		dto.CreateGymRequest	true	"Dados da academia"
//	@Success		201	{object}	dto.GymResponse
//	@Failure		400	{object}	dto.ErrorResponse
//	@Router			/gyms [post]
func (h *GymHandler) CreateGym(c *gin.Context) {
	var req dto.CreateGymRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response := dto.BindingErrorResponse(c, err)
		dto.WriteProblem(c, response)
		return
	}

	gym, err := h.gymService.CreateGym(c.Request.Context(), req.ToGymEntity())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToGymResponse(gym))
}

// GetGym busca uma academia por ID
//
//	@Summary		Busca uma academia
//	@Tags			gyms
//	@Produce		json
//	@Param			id	path		string	true	"ID da academia"
//	@Success		200	{object}	dto.GymResponse
//	@Failure		404	{object}	dto.ErrorResponse
//	@Router			/gyms/{id} [get]
func (h *GymHandler) GetGym(c *gin.Context) {
	id := c.Param("id")
	if !dto.IsValidID(id) {
		response := dto.BadRequestErrorResponseI18n(c, errors.ErrInvalidIdentifier.Error())
		dto.WriteProblem(c, response)
		return
	}

	gym, err := h.gymService.GetGym(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToGymResponse(gym))
}

// ListGyms lista todas as academias
//
//	@Summary		Lista academias
//	@Tags			gyms
//	@Produce		json
//	@Success		200	{array}	dto.GymResponse
//	@Router			/gyms [get]
func (h *GymHandler) ListGyms(c *gin.Context) {
	gyms, err := h.gymService.ListGyms(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToGymResponses(gyms))
}

// UpdateGym atualiza uma academia
//
//	@Summary		Atualiza uma academia
//	@Tags			gyms
//	@Accept			json
//	@Produce		json
//	@Param			id	path		string					true	"ID da academia"
//	@Param			gym	body		dto.UpdateGymRequest	true	"Dados da academia"
//	@Success		200	{object}	dto.GymResponse
//	@Failure		404	{object}	dto.ErrorResponse
//	@Router			/gyms/{id} [put]
func (h *GymHandler) UpdateGym(c *gin.Context) {
	id := c.Param("id")
	if !dto.IsValidID(id) {
		response := dto.BadRequestErrorResponseI18n(c, errors.ErrInvalidIdentifier.Error())
		dto.WriteProblem(c, response)
		return
	}

	var req dto.UpdateGymRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response := dto.BindingErrorResponse(c, err)
		dto.WriteProblem(c, response)
		return
	}

	gym, err := h.gymService.UpdateGym(c.Request.Context(), id, req.ToGymEntity())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToGymResponse(gym))
}

// DeleteGym remove uma academia
//
//	@Summary		Remove uma academia
//	@Tags			gyms
//	@Produce		json
//	@Param			id	path	string	true	"ID da academia"
//	@Success		200	{object}	map[string]string
//	@Failure		404	{object}	dto.ErrorResponse
//	@Router			/gyms/{id} [delete]
func (h *GymHandler) DeleteGym(c *gin.Context) {
	id := c.Param("id")
	if !dto.IsValidID(id) {
		response := dto.BadRequestErrorResponseI18n(c, errors.ErrInvalidIdentifier.Error())
		dto.WriteProblem(c, response)
		return
	}

	if err := h.gymService.DeleteGym(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": dto.T(c, "message.gym_deleted")})
}

// LinkMachine vincula uma máquina ao inventário de uma academia
//
//	@Summary		Vincula uma máquina a uma academia
//	@Description	Incrementa a quantidade se a máquina já está no inventário, senão acrescenta uma entrada nova
//	@Tags			gyms
//	@Accept			json
//	@Produce		json
//	@Param			link	body		dto.LinkMachineRequest	true	"Dados da vinculação"
//	@Success		200		{object}	dto.GymResponse
//	@Failure		404		{object}	dto.ErrorResponse
//	@Router			/gyms/link-machine [post]
func (h *GymHandler) LinkMachine(c *gin.Context) {
	var req dto.LinkMachineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response := dto.BindingErrorResponse(c, err)
		dto.WriteProblem(c, response)
		return
	}

	input := services.LinkMachineInput{
		GymID:          req.GymID,
		MachineID:      req.MachineID,
		Quantity:       1,
		LastServicedAt: req.LastServicedAt,
		AreaNote:       req.AreaNote,
	}
	if req.Quantity != nil {
		input.Quantity = *req.Quantity
	}

	gym, err := h.gymService.LinkMachine(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToGymResponse(gym))
}

// ListGymsByMachine lista academias que possuem a máquina no inventário
//
//	@Summary		Lista academias por máquina
//	@Tags			gyms
//	@Produce		json
//	@Param			machineId	path		string	true	"ID da máquina"
//	@Param			city		query		string	false	"Filtro por cidade"
//	@Param			country		query		string	false	"Filtro por país"
//	@Success		200			{array}		dto.GymResponse
//	@Failure		404			{object}	dto.ErrorResponse
//	@Router			/gyms/by-machine/{machineId} [get]
func (h *GymHandler) ListGymsByMachine(c *gin.Context) {
	machineID := c.Param("machineId")
	if !dto.IsValidID(machineID) {
		response := dto.BadRequestErrorResponseI18n(c, errors.ErrInvalidIdentifier.Error())
		dto.WriteProblem(c, response)
		return
	}

	filters := repositories.GymByMachineFilters{
		City:    c.Query("city"),
		Country: c.Query("country"),
	}

	gyms, err := h.gymService.FindGymsByMachine(c.Request.Context(), machineID, filters)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToGymResponses(gyms))
}

// handleError mapeia erros de domínio para respostas RFC 7807
func (h *GymHandler) handleError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errors.ErrGymNotFound):
		response := dto.NotFoundErrorResponseI18n(c, "error.gym_not_found")
		dto.WriteProblem(c, response)
	case errs.Is(err, errors.ErrMachineNotFound):
		response := dto.NotFoundErrorResponseI18n(c, "error.machine_not_found")
		dto.WriteProblem(c, response)
	case errs.Is(err, errors.ErrTrainerNotFound):
		response := dto.NotFoundErrorResponseI18n(c, "error.trainer_not_found")
		dto.WriteProblem(c, response)
	case errs.Is(err, errors.ErrInvalidQuantity):
		response := dto.BadRequestErrorResponseI18n(c, "error.invalid_quantity")
		dto.WriteProblem(c, response)
	default:
		response := dto.InternalErrorResponseI18n(c)
		response.Detail = err.Error()
		dto.WriteProblem(c, response)
	}
}
