package auth

import (
	"errors"

	"github.com/markbates/goth"
	"github.com/markbates/goth/providers/github"

	"github.com/rafabene/gymdir-backend/internal/infrastructure/config"
)

var (
	ErrProviderDisabled = errors.New("github oauth is not configured")
)

// ExternalIdentity é a asserção de identidade devolvida pelo provedor OAuth
type ExternalIdentity struct {
	ProviderID string
	Email      string
	NickName   string
	Name       string
	AvatarURL  string
}

// GitHub encapsula o provedor OAuth do GitHub como um objeto construído
// explicitamente e injetado nos handlers, sem registro global de providers.
type GitHub struct {
	provider *github.Provider
	enabled  bool
}

// NewGitHub cria o contexto de autenticação GitHub a partir da configuração.
// Sem credenciais o fluxo fica desabilitado e BeginFlow retorna erro.
func NewGitHub(cfg *config.OAuthConfig) *GitHub {
	if cfg.GitHubClientID == "" || cfg.GitHubClientSecret == "" {
		return &GitHub{enabled: false}
	}

	provider := github.New(
		cfg.GitHubClientID,
		cfg.GitHubClientSecret,
		cfg.GitHubCallbackURL,
		"read:user",
		"user:email",
	)

	return &GitHub{provider: provider, enabled: true}
}

// Enabled indica se o fluxo OAuth está configurado
func (g *GitHub) Enabled() bool {
	return g.enabled
}

// BeginFlow inicia o fluxo OAuth e retorna a URL de autorização junto com a
// sessão do provedor serializada (guardada na sessão HTTP até o callback)
func (g *GitHub) BeginFlow(state string) (authURL, providerSession string, err error) {
	if !g.enabled {
		return "", "", ErrProviderDisabled
	}

	sess, err := g.provider.BeginAuth(state)
	if err != nil {
		return "", "", err
	}

	authURL, err = sess.GetAuthURL()
	if err != nil {
		return "", "", err
	}

	return authURL, sess.Marshal(), nil
}

// CompleteFlow troca o code do callback pelo token de acesso e busca o
// perfil do usuário no GitHub
func (g *GitHub) CompleteFlow(providerSession string, params goth.Params) (ExternalIdentity, error) {
	if !g.enabled {
		return ExternalIdentity{}, ErrProviderDisabled
	}

	sess, err := g.provider.UnmarshalSession(providerSession)
	if err != nil {
		return ExternalIdentity{}, err
	}

	if _, err := sess.Authorize(g.provider, params); err != nil {
		return ExternalIdentity{}, err
	}

	user, err := g.provider.FetchUser(sess)
	if err != nil {
		return ExternalIdentity{}, err
	}

	return ExternalIdentity{
		ProviderID: user.UserID,
		Email:      user.Email,
		NickName:   user.NickName,
		Name:       user.Name,
		AvatarURL:  user.AvatarURL,
	}, nil
}
