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
	"github.com/rafabene/gymdir-backend/internal/handlers/middleware"
	"github.com/rafabene/gymdir-backend/internal/services"
)

// UserHandler lida com requisições HTTP relacionadas a usuários
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler cria um novo UserHandler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// Register cria uma conta com email e senha
//
//	@Summary		Cadastra um usuário
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Param			user	body		dto.CreateUserRequest	true	"Dados do usuário"
//	@Success		201		{object}	dto.UserResponse
//	@Failure		409		{object}	dto.ErrorResponse
//	@Router			/users/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response := dto.BindingErrorResponse(c, err)
		dto.WriteProblem(c, response)
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), services.CreateUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		City:      req.City,
		Country:   req.Country,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// GetUser busca um usuário por ID
//
//	@Summary		Busca um usuário
//	@Tags			users
//	@Produce		json
//	@Param			id	path		string	true	"ID do usuário"
//	@Success		200	{object}	dto.UserResponse
//	@Failure		404	{object}	dto.ErrorResponse
//	@Router			/users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id := c.Param("id")
	if !dto.IsValidID(id) {
		response := dto.BadRequestErrorResponseI18n(c, errors.ErrInvalidIdentifier.Error())
		dto.WriteProblem(c, response)
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// ListUsers lista usuários
//
//	@Summary		Lista usuários
//	@Tags			users
//	@Produce		json
//	@Param			role	query	string	false	"Filtro por papel"
//	@Param			page	query	int		false	"Página"
//	@Success		200		{array}	dto.UserResponse
//	@Router			/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	filters := repositories.UserFilters{}

	if raw := c.Query("role"); raw != "" {
		role := entities.Role(raw)
		if role.IsValid() {
			filters.Role = &role
		}
	}
	filters.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	filters.PageSize, _ = strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	users, err := h.userService.ListUsers(c.Request.Context(), filters)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponses(users))
}

// DeleteUser remove um usuário (ação administrativa)
//
//	@Summary		Remove um usuário
//	@Tags			users
//	@Produce		json
//	@Param			id	path	string	true	"ID do usuário"
//	@Success		200	{object}	map[string]string
//	@Failure		403	{object}	dto.ErrorResponse
//	@Router			/users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id := c.Param("id")
	if !dto.IsValidID(id) {
		response := dto.BadRequestErrorResponseI18n(c, errors.ErrInvalidIdentifier.Error())
		dto.WriteProblem(c, response)
		return
	}

	value, _ := c.Get(middleware.UserContextKey)
	actor, ok := value.(*entities.User)
	if !ok {
		response := dto.UnauthorizedErrorResponseI18n(c)
		dto.WriteProblem(c, response)
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), actor, id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": dto.T(c, "message.user_deleted")})
}

func (h *UserHandler) handleError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errors.ErrUserNotFound):
		response := dto.NotFoundErrorResponseI18n(c, "error.user_not_found")
		dto.WriteProblem(c, response)
	case errs.Is(err, errors.ErrForbidden):
		response := dto.ForbiddenErrorResponseI18n(c)
		dto.WriteProblem(c, response)
	case errs.Is(err, errors.ErrEmailAlreadyExists):
		response := dto.ConflictErrorResponseI18n(c, "error.email_already_exists")
		dto.WriteProblem(c, response)
	case errs.Is(err, errors.ErrInvalidEmail):
		response := dto.BadRequestErrorResponseI18n(c, "error.invalid_email")
		dto.WriteProblem(c, response)
	default:
		response := dto.InternalErrorResponseI18n(c)
		response.Detail = err.Error()
		dto.WriteProblem(c, response)
	}
}
