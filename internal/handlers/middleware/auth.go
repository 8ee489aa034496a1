package middleware

import (
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/rafabene/gymdir-backend/internal/domain/repositories"
	"github.com/rafabene/gymdir-backend/internal/handlers/dto"
	"github.com/rafabene/gymdir-backend/internal/infrastructure/auth"
)

// Chaves de sessão
const (
	SessionUserIDKey          = "user_id"
	SessionGithubIDKey        = "github_id"
	SessionAvatarURLKey       = "avatar_url"
	SessionOAuthStateKey      = "oauth_state"
	SessionProviderSessionKey = "provider_session"
	SessionReturnToKey        = "return_to"
)

// Chaves de contexto do Gin
const (
	UserIDContextKey = "auth_user_id"
	UserContextKey   = "auth_user"
)

// AuthMiddleware autentica requisições por cookie de sessão ou por token
// bearer, nessa ordem
type AuthMiddleware struct {
	userRepo repositories.UserRepository
	tokens   *auth.TokenService
}

// NewAuthMiddleware cria um novo AuthMiddleware
func NewAuthMiddleware(userRepo repositories.UserRepository, tokens *auth.TokenService) *AuthMiddleware {
	return &AuthMiddleware{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// RequireSession exige um principal autenticado e define o id do usuário no
// contexto. Responde 401 em formato problem details caso contrário.
func (m *AuthMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := m.resolveUserID(c)
		if userID == "" {
			response := dto.UnauthorizedErrorResponseI18n(c)
			c.AbortWithStatusJSON(response.Status, response)
			return
		}

		c.Set(UserIDContextKey, userID)
		c.Next()
	}
}

// RequireUser exige um principal autenticado com registro de usuário
// existente e o carrega no contexto
func (m *AuthMiddleware) RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := m.resolveUserID(c)
		if userID == "" {
			response := dto.UnauthorizedErrorResponseI18n(c)
			c.AbortWithStatusJSON(response.Status, response)
			return
		}

		user, err := m.userRepo.FindByID(c.Request.Context(), userID)
		if err != nil {
			response := dto.InternalErrorResponseI18n(c)
			c.AbortWithStatusJSON(response.Status, response)
			return
		}
		if user == nil {
			// Sessão apontando para conta removida
			response := dto.UnauthorizedErrorResponseI18n(c)
			c.AbortWithStatusJSON(response.Status, response)
			return
		}

		c.Set(UserIDContextKey, userID)
		c.Set(UserContextKey, user)
		c.Next()
	}
}

// resolveUserID extrai o id do usuário da sessão ou do header Authorization
func (m *AuthMiddleware) resolveUserID(c *gin.Context) string {
	session := sessions.Default(c)
	if userID, ok := session.Get(SessionUserIDKey).(string); ok && userID != "" {
		return userID
	}

	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}

	token, found := strings.CutPrefix(header, "Bearer ")
	if !found {
		return ""
	}

	userID, err := m.tokens.Parse(strings.TrimSpace(token))
	if err != nil {
		return ""
	}
	return userID
}
