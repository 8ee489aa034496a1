package http

import (
	errs "errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/gymdir-backend/internal/domain/entities"
	"github.com/rafabene/gymdir-backend/internal/domain/errors"
	"github.com/rafabene/gymdir-backend/internal/domain/repositories"
	"github.com/rafabene/gymdir-backend/internal/handlers/dto"
	"github.com/rafabene/gymdir-backend/internal/services"
)

// MachineHandler lida com requisições HTTP do catálogo de máquinas
type MachineHandler struct {
	machineService *services.MachineService
}

// NewMachineHandler cria um novo MachineHandler
func NewMachineHandler(machineService *services.MachineService) *MachineHandler {
	return &MachineHandler{
		machineService: machineService,
	}
}

// CreateMachine registra uma máquina no catálogo
//
//	@Summary		Cria uma máquina
//	@Tags			machines
//	@Accept			json
//	@Produce		json
//	@Param			machine	body		dto.CreateMachineRequest	true	"Dados da máquina"
//	@Success		201		{object}	dto.MachineResponse
//	@Failure		400		{object}	dto.ErrorResponse
//	@Router			/machines [post]
func (h *MachineHandler) CreateMachine(c *gin.Context) {
	var req dto.CreateMachineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response := dto.BindingErrorResponse(c, err)
		dto.WriteProblem(c, response)
		return
	}

	machine, err := h.machineService.CreateMachine(c.Request.Context(), req.ToMachineEntity())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToMachineResponse(machine))
}

// GetMachine busca uma máquina por ID
//
//	@Summary		Busca uma máquina
//	@Tags			machines
//	@Produce		json
//	@Param			id	path		string	true	"ID da máquina"
//	@Success		200	{object}	dto.MachineResponse
//	@Failure		404	{object}	dto.ErrorResponse
//	@Router			/machines/{id} [get]
func (h *MachineHandler) GetMachine(c *gin.Context) {
	id := c.Param("id")
	if !dto.IsValidID(id) {
		response := dto.BadRequestErrorResponseI18n(c, errors.ErrInvalidIdentifier.Error())
		dto.WriteProblem(c, response)
		return
	}

	machine, err := h.machineService.GetMachine(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMachineResponse(machine))
}

// ListMachines lista máquinas, paginadas ou filtradas por nome/tipo/marca
//
//	@Summary		Lista máquinas
//	@Tags			machines
//	@Produce		json
//	@Param			name	query		string	false	"Filtro por nome (substring)"
//	@Param			type	query		string	false	"Filtro por tipo (exato)"
//	@Param			brand	query		string	false	"Filtro por marca (substring)"
//	@Param			page	query		int		false	"Página"
//	@Param			limit	query		int		false	"Itens por página"
//	@Success		200		{object}	dto.MachineListResponse
//	@Router			/machines [get]
func (h *MachineHandler) ListMachines(c *gin.Context) {
	filters := repositories.MachineFilters{
		Name:  c.Query("name"),
		Type:  entities.MachineType(c.Query("type")),
		Brand: c.Query("brand"),
	}

	// Com filtros a busca não é paginada
	if filters.Name != "" || filters.Type != "" || filters.Brand != "" {
		machines, err := h.machineService.SearchMachines(c.Request.Context(), filters)
		if err != nil {
			h.handleError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.ToMachineResponses(machines))
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	machines, total, err := h.machineService.ListMachines(c.Request.Context(), repositories.MachinePage{
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MachineListResponse{
		Items: dto.ToMachineResponses(machines),
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// UpdateMachine atualiza uma máquina do catálogo
//
//	@Summary		Atualiza uma máquina
//	@Tags			machines
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"ID da máquina"
//	@Param			machine	body		dto.UpdateMachineRequest	true	"Dados da máquina"
//	@Success		200		{object}	dto.MachineResponse
//	@Failure		404		{object}	dto.ErrorResponse
//	@Router			/machines/{id} [put]
func (h *MachineHandler) UpdateMachine(c *gin.Context) {
	id := c.Param("id")
	if !dto.IsValidID(id) {
		response := dto.BadRequestErrorResponseI18n(c, errors.ErrInvalidIdentifier.Error())
		dto.WriteProblem(c, response)
		return
	}

	var req dto.UpdateMachineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response := dto.BindingErrorResponse(c, err)
		dto.WriteProblem(c, response)
		return
	}

	machine, err := h.machineService.UpdateMachine(c.Request.Context(), id, req.ToMachineEntity())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMachineResponse(machine))
}

// DeleteMachine remove uma máquina do catálogo
//
//	@Summary		Remove uma máquina
//	@Tags			machines
//	@Produce		json
//	@Param			id	path	string	true	"ID da máquina"
//	@Success		200	{object}	map[string]string
//	@Failure		404	{object}	dto.ErrorResponse
//	@Router			/machines/{id} [delete]
func (h *MachineHandler) DeleteMachine(c *gin.Context) {
	id := c.Param("id")
	if !dto.IsValidID(id) {
		response := dto.BadRequestErrorResponseI18n(c, errors.ErrInvalidIdentifier.Error())
		dto.WriteProblem(c, response)
		return
	}

	if err := h.machineService.DeleteMachine(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": dto.T(c, "message.machine_deleted")})
}

func (h *MachineHandler) handleError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errors.ErrMachineNotFound):
		response := dto.NotFoundErrorResponseI18n(c, "error.machine_not_found")
		dto.WriteProblem(c, response)
	default:
		response := dto.InternalErrorResponseI18n(c)
		response.Detail = err.Error()
		dto.WriteProblem(c, response)
	}
}
