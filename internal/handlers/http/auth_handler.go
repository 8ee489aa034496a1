package http

import (
	errs "errors"
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rafabene/gymdir-backend/internal/domain/entities"
	"github.com/rafabene/gymdir-backend/internal/domain/errors"
	"github.com/rafabene/gymdir-backend/internal/handlers/dto"
	"github.com/rafabene/gymdir-backend/internal/handlers/middleware"
	"github.com/rafabene/gymdir-backend/internal/infrastructure/auth"
	"github.com/rafabene/gymdir-backend/internal/services"
)

// AuthHandler lida com o fluxo OAuth, login e sessão
type AuthHandler struct {
	authService *services.AuthService
	userService *services.UserService
	github      *auth.GitHub
}

// NewAuthHandler cria um novo AuthHandler
func NewAuthHandler(authService *services.AuthService, userService *services.UserService, github *auth.GitHub) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		userService: userService,
		github:      github,
	}
}

// GithubBegin inicia o fluxo OAuth redirecionando para o GitHub
//
//	@Summary		Inicia o login com GitHub
//	@Tags			auth
//	@Param			returnTo	query	string	false	"Caminho relativo de retorno após o login"
//	@Success		302
//	@Router			/auth/github [get]
func (h *AuthHandler) GithubBegin(c *gin.Context) {
	if !h.github.Enabled() {
		response := dto.NewErrorResponseI18n(c, errors.ProblemTypeInternal,
			"error.internal.title", "error.oauth_disabled", http.StatusServiceUnavailable)
		dto.WriteProblem(c, response)
		return
	}

	state := uuid.NewString()
	authURL, providerSession, err := h.github.BeginFlow(state)
	if err != nil {
		response := dto.InternalErrorResponseI18n(c)
		response.Detail = err.Error()
		dto.WriteProblem(c, response)
		return
	}

	session := sessions.Default(c)
	session.Set(middleware.SessionOAuthStateKey, state)
	session.Set(middleware.SessionProviderSessionKey, providerSession)
	if returnTo := c.Query("returnTo"); isSafeReturnPath(returnTo) {
		session.Set(middleware.SessionReturnToKey, returnTo)
	}
	if err := session.Save(); err != nil {
		response := dto.InternalErrorResponseI18n(c)
		response.Detail = err.Error()
		dto.WriteProblem(c, response)
		return
	}

	c.Redirect(http.StatusFound, authURL)
}

// GithubCallback conclui o fluxo OAuth e resolve a identidade para uma conta
//
//	@Summary		Callback do login com GitHub
//	@Tags			auth
//	@Success		302
//	@Router			/auth/github/callback [get]
func (h *AuthHandler) GithubCallback(c *gin.Context) {
	session := sessions.Default(c)

	state, _ := session.Get(middleware.SessionOAuthStateKey).(string)
	if state == "" || state != c.Query("state") {
		response := dto.BadRequestErrorResponseI18n(c, "error.invalid_oauth_state")
		dto.WriteProblem(c, response)
		return
	}

	providerSession, _ := session.Get(middleware.SessionProviderSessionKey).(string)
	session.Delete(middleware.SessionOAuthStateKey)
	session.Delete(middleware.SessionProviderSessionKey)

	identity, err := h.github.CompleteFlow(providerSession, c.Request.URL.Query())
	if err != nil {
		_ = session.Save()
		c.Redirect(http.StatusFound, "/auth/failure")
		return
	}

	sessionUserID, _ := session.Get(middleware.SessionUserIDKey).(string)

	result, err := h.authService.LinkExternalIdentity(c.Request.Context(), identity, sessionUserID)
	if err != nil {
		if errs.Is(err, errors.ErrGithubAlreadyLinked) {
			response := dto.ConflictErrorResponseI18n(c, "error.github_already_linked")
			dto.WriteProblem(c, response)
			return
		}
		response := dto.InternalErrorResponseI18n(c)
		response.Detail = err.Error()
		dto.WriteProblem(c, response)
		return
	}

	if result.Outcome == services.OutcomeLinked {
		session.Set(middleware.SessionUserIDKey, result.User.ID)
		session.Delete(middleware.SessionGithubIDKey)
		session.Delete(middleware.SessionAvatarURLKey)
	} else {
		// Identidade pendente até o POST /auth/complete-profile
		session.Set(middleware.SessionGithubIDKey, identity.ProviderID)
		session.Set(middleware.SessionAvatarURLKey, identity.AvatarURL)
	}

	returnTo, _ := session.Get(middleware.SessionReturnToKey).(string)
	session.Delete(middleware.SessionReturnToKey)

	if err := session.Save(); err != nil {
		response := dto.InternalErrorResponseI18n(c)
		response.Detail = err.Error()
		dto.WriteProblem(c, response)
		return
	}

	if returnTo == "" {
		returnTo = "/auth/success"
	}
	c.Redirect(http.StatusFound, returnTo)
}

// Success informa o estado da sessão após o fluxo OAuth
//
//	@Summary		Estado da sessão após o login
//	@Tags			auth
//	@Produce		json
//	@Success		200	{object}	dto.SessionResponse
//	@Router			/auth/success [get]
func (h *AuthHandler) Success(c *gin.Context) {
	session := sessions.Default(c)

	if userID, ok := session.Get(middleware.SessionUserIDKey).(string); ok && userID != "" {
		user, err := h.userService.GetUser(c.Request.Context(), userID)
		if err == nil {
			response := dto.ToUserResponse(user)
			c.JSON(http.StatusOK, dto.SessionResponse{Authenticated: true, User: &response})
			return
		}
	}

	pendingGithub, _ := session.Get(middleware.SessionGithubIDKey).(string)
	c.JSON(http.StatusOK, gin.H{
		"authenticated":          false,
		"needsProfileCompletion": pendingGithub != "",
	})
}

// Failure informa que o fluxo OAuth não foi concluído
//
//	@Summary		Falha no login
//	@Tags			auth
//	@Produce		json
//	@Success		401	{object}	dto.ErrorResponse
//	@Router			/auth/failure [get]
func (h *AuthHandler) Failure(c *gin.Context) {
	response := dto.UnauthorizedErrorResponseI18n(c)
	dto.WriteProblem(c, response)
}

// CompleteProfile conclui o cadastro iniciado pelo fluxo OAuth
//
//	@Summary		Conclui o cadastro do usuário
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			profile	body	dto.CompleteProfileRequest	true	"Dados do perfil"
//	@Success		302
//	@Failure		400	{object}	dto.ErrorResponse
//	@Router			/auth/complete-profile [post]
func (h *AuthHandler) CompleteProfile(c *gin.Context) {
	var req dto.CompleteProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response := dto.BindingErrorResponse(c, err)
		dto.WriteProblem(c, response)
		return
	}

	// O cadastro só conclui para quem já provou quem é: sessão autenticada
	// ou identidade GitHub pendente deixada pelo callback OAuth
	session := sessions.Default(c)
	sessionUserID, _ := session.Get(middleware.SessionUserIDKey).(string)
	githubID, _ := session.Get(middleware.SessionGithubIDKey).(string)
	avatarURL, _ := session.Get(middleware.SessionAvatarURLKey).(string)
	if sessionUserID == "" && githubID == "" {
		response := dto.UnauthorizedErrorResponseI18n(c)
		dto.WriteProblem(c, response)
		return
	}

	workoutTimes := make([]entities.WorkoutTime, 0, len(req.PreferredWorkoutTimes))
	for _, wt := range req.PreferredWorkoutTimes {
		workoutTimes = append(workoutTimes, entities.WorkoutTime(wt))
	}

	user, err := h.authService.CompleteProfile(c.Request.Context(), services.CompleteProfileInput{
		SessionUserID:         sessionUserID,
		FirstName:             req.FirstName,
		LastName:              req.LastName,
		Email:                 req.Email,
		Password:              req.Password,
		Bio:                   req.Bio,
		City:                  req.City,
		Country:               req.Country,
		Goals:                 req.Goals,
		PreferredWorkoutTimes: workoutTimes,
		GithubID:              githubID,
		AvatarURL:             avatarURL,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	session.Set(middleware.SessionUserIDKey, user.ID)
	session.Delete(middleware.SessionGithubIDKey)
	session.Delete(middleware.SessionAvatarURLKey)
	if err := session.Save(); err != nil {
		response := dto.InternalErrorResponseI18n(c)
		response.Detail = err.Error()
		dto.WriteProblem(c, response)
		return
	}

	c.Redirect(http.StatusFound, "/auth/success")
}

// Login autentica por email e senha e emite um token bearer
//
//	@Summary		Login com email e senha
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			credentials	body		dto.LoginRequest	true	"Credenciais"
//	@Success		200			{object}	dto.LoginResponse
//	@Failure		401			{object}	dto.ErrorResponse
//	@Router			/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response := dto.BindingErrorResponse(c, err)
		dto.WriteProblem(c, response)
		return
	}

	token, user, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	// Login por senha também estabelece a sessão
	session := sessions.Default(c)
	session.Set(middleware.SessionUserIDKey, user.ID)
	_ = session.Save()

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token: token,
		User:  dto.ToUserResponse(user),
	})
}

// Me retorna o principal da sessão corrente
//
//	@Summary		Usuário autenticado atual
//	@Tags			auth
//	@Produce		json
//	@Success		200	{object}	dto.SessionResponse
//	@Failure		401	{object}	dto.ErrorResponse
//	@Router			/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	value, _ := c.Get(middleware.UserContextKey)
	user, ok := value.(*entities.User)
	if !ok {
		response := dto.UnauthorizedErrorResponseI18n(c)
		dto.WriteProblem(c, response)
		return
	}

	response := dto.ToUserResponse(user)
	c.JSON(http.StatusOK, dto.SessionResponse{Authenticated: true, User: &response})
}

// Logout encerra a sessão corrente
//
//	@Summary		Encerra a sessão
//	@Tags			auth
//	@Produce		json
//	@Success		200	{object}	map[string]string
//	@Router			/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{MaxAge: -1, Path: "/"})
	_ = session.Save()

	c.JSON(http.StatusOK, gin.H{"message": dto.T(c, "message.logout_success")})
}

func (h *AuthHandler) handleError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errors.ErrInvalidCredentials):
		response := dto.UnauthorizedErrorResponseI18n(c)
		response.Detail = dto.T(c, "error.invalid_credentials")
		dto.WriteProblem(c, response)
	case errs.Is(err, errors.ErrInvalidEmail):
		response := dto.BadRequestErrorResponseI18n(c, "error.invalid_email")
		dto.WriteProblem(c, response)
	case errs.Is(err, errors.ErrEmailAlreadyExists):
		response := dto.ConflictErrorResponseI18n(c, "error.email_already_exists")
		dto.WriteProblem(c, response)
	case errs.Is(err, errors.ErrGithubAlreadyLinked):
		response := dto.ConflictErrorResponseI18n(c, "error.github_already_linked")
		dto.WriteProblem(c, response)
	case errs.Is(err, errors.ErrUnauthorized):
		response := dto.UnauthorizedErrorResponseI18n(c)
		dto.WriteProblem(c, response)
	default:
		response := dto.InternalErrorResponseI18n(c)
		response.Detail = err.Error()
		dto.WriteProblem(c, response)
	}
}

// isSafeReturnPath limita o redirect pós-login a caminhos relativos locais
func isSafeReturnPath(path string) bool {
	if path == "" || !strings.HasPrefix(path, "/") {
		return false
	}
	if strings.HasPrefix(path, "//") || strings.Contains(path, "\\") {
		return false
	}
	return true
}
