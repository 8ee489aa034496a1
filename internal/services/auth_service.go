package services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/rafabene/gymdir-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/gymdir-backend/internal/domain/errors"
	"github.com/rafabene/gymdir-backend/internal/domain/ports"
	"github.com/rafabene/gymdir-backend/internal/domain/repositories"
	"github.com/rafabene/gymdir-backend/internal/domain/valueobjects"
	"github.com/rafabene/gymdir-backend/internal/infrastructure/auth"
)

// LinkOutcome é o resultado da vinculação de uma identidade externa
type LinkOutcome string

const (
	// OutcomeLinked indica que a identidade foi resolvida para um usuário
	// existente ou recém vinculado
	OutcomeLinked LinkOutcome = "linked"
	// OutcomeNeedsProfile indica que nenhuma conta casou e o usuário ainda
	// precisa completar o cadastro
	OutcomeNeedsProfile LinkOutcome = "needs_profile"
)

// LinkResult carrega o usuário resolvido (quando Outcome == OutcomeLinked)
type LinkResult struct {
	Outcome LinkOutcome
	User    *entities.User
}

// AuthService contém a lógica de autenticação e de vinculação de contas
type AuthService struct {
	userRepo repositories.UserRepository
	tokens   *auth.TokenService
	logger   ports.Logger
}

// NewAuthService cria um novo AuthService
func NewAuthService(
	userRepo repositories.UserRepository,
	tokens *auth.TokenService,
	logger ports.Logger,
) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
	}
}

// LinkExternalIdentity resolve uma identidade OAuth para uma conta local.
// A ordem de prioridade é fixa:
//
//  1. sessão autenticada: anexa a identidade ao usuário logado
//  2. provider id: conta já vinculada a este GitHub id
//  3. email normalizado: anexa a uma conta existente com o mesmo email
//  4. nenhuma das anteriores: o chamador deve pedir a conclusão do cadastro
//
// Duas chamadas concorrentes para a mesma identidade são resolvidas pelo
// índice único em github_id: a perdedora recebe o conflito e relê a conta
// vencedora, de modo que a identidade nunca termina em duas contas.
func (s *AuthService) LinkExternalIdentity(ctx context.Context, identity auth.ExternalIdentity, sessionUserID string) (*LinkResult, error) {
	if sessionUserID != "" {
		user, err := s.userRepo.FindByID(ctx, sessionUserID)
		if err != nil {
			return nil, err
		}
		if user != nil {
			return s.attach(ctx, user, identity)
		}
		// Sessão apontando para usuário removido segue o fluxo anônimo
	}

	user, err := s.userRepo.FindByGithubID(ctx, identity.ProviderID)
	if err != nil {
		return nil, err
	}
	if user != nil {
		return &LinkResult{Outcome: OutcomeLinked, User: user}, nil
	}

	if identity.Email != "" {
		email, err := valueobjects.NewEmail(identity.Email)
		if err == nil {
			user, err = s.userRepo.FindByEmail(ctx, email.String())
			if err != nil {
				return nil, err
			}
			if user != nil {
				return s.attach(ctx, user, identity)
			}
		}
	}

	s.logger.Info("external identity has no matching account", "provider_id", identity.ProviderID)
	return &LinkResult{Outcome: OutcomeNeedsProfile}, nil
}

// attach grava o github_id e o avatar no usuário, resolvendo corrida de
// vinculação duplicada pela releitura da conta vencedora
func (s *AuthService) attach(ctx context.Context, user *entities.User, identity auth.ExternalIdentity) (*LinkResult, error) {
	if user.HasGithubIdentity() {
		if *user.GithubID != identity.ProviderID {
			return nil, domainerrors.ErrGithubAlreadyLinked
		}
		return &LinkResult{Outcome: OutcomeLinked, User: user}, nil
	}

	providerID := identity.ProviderID
	user.GithubID = &providerID
	if identity.AvatarURL != "" {
		avatarURL := identity.AvatarURL
		user.AvatarURL = &avatarURL
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, domainerrors.ErrGithubAlreadyLinked) {
			winner, findErr := s.userRepo.FindByGithubID(ctx, identity.ProviderID)
			if findErr != nil {
				return nil, findErr
			}
			if winner != nil {
				s.logger.Warn("concurrent identity link resolved to existing account",
					"provider_id", identity.ProviderID, "user_id", winner.ID)
				return &LinkResult{Outcome: OutcomeLinked, User: winner}, nil
			}
		}
		return nil, err
	}

	s.logger.Info("external identity linked", "user_id", user.ID, "provider_id", identity.ProviderID)
	return &LinkResult{Outcome: OutcomeLinked, User: user}, nil
}

// CompleteProfileInput representa os dados de conclusão de cadastro após o
// fluxo OAuth terminar sem conta correspondente. SessionUserID e GithubID
// vêm da sessão, nunca do corpo da requisição.
type CompleteProfileInput struct {
	SessionUserID         string
	FirstName             string
	LastName              string
	Email                 string
	Password              string
	Bio                   string
	City                  string
	Country               string
	Goals                 []string
	PreferredWorkoutTimes []entities.WorkoutTime
	GithubID              string
	AvatarURL             string
}

// CompleteProfile conclui o cadastro de um chamador que já provou quem é:
// uma sessão autenticada atualiza a própria conta, e uma identidade GitHub
// pendente na sessão cria ou atualiza a conta pelo email normalizado. Sem
// sessão nem identidade pendente a operação é recusada, para que um corpo
// com o email de outra pessoa nunca vire a conta dela.
func (s *AuthService) CompleteProfile(ctx context.Context, input CompleteProfileInput) (*entities.User, error) {
	if input.SessionUserID == "" && input.GithubID == "" {
		return nil, domainerrors.ErrUnauthorized
	}

	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return nil, domainerrors.ErrInvalidEmail
	}

	if input.SessionUserID != "" {
		return s.completeOwnProfile(ctx, input, email)
	}

	user, err := s.userRepo.FindByEmail(ctx, email.String())
	if err != nil {
		return nil, err
	}

	if user == nil {
		user = &entities.User{
			FirstName:             input.FirstName,
			LastName:              input.LastName,
			Email:                 email,
			Role:                  entities.RoleUser,
			Bio:                   input.Bio,
			City:                  input.City,
			Country:               input.Country,
			Goals:                 input.Goals,
			PreferredWorkoutTimes: input.PreferredWorkoutTimes,
		}
		if err := s.applyCredentials(user, input); err != nil {
			return nil, err
		}

		if err := user.Validate(); err != nil {
			return nil, err
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return nil, err
		}

		s.logger.Info("profile completed with new account", "user_id", user.ID)
		return user, nil
	}

	// Conta existente: a identidade pendente tem que casar com ela
	if user.HasGithubIdentity() && *user.GithubID != input.GithubID {
		return nil, domainerrors.ErrGithubAlreadyLinked
	}

	if err := s.applyProfile(user, input); err != nil {
		return nil, err
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("profile completed on existing account", "user_id", user.ID)
	return user, nil
}

// completeOwnProfile aplica a conclusão de cadastro na conta da sessão. O
// email só troca quando o novo endereço ainda não pertence a outra conta.
func (s *AuthService) completeOwnProfile(ctx context.Context, input CompleteProfileInput, email valueobjects.Email) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, input.SessionUserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		// Sessão apontando para conta removida
		return nil, domainerrors.ErrUnauthorized
	}

	if user.Email.String() != email.String() {
		existing, err := s.userRepo.FindByEmail(ctx, email.String())
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domainerrors.ErrEmailAlreadyExists
		}
		user.Email = email
	}

	if input.GithubID != "" && user.HasGithubIdentity() && *user.GithubID != input.GithubID {
		return nil, domainerrors.ErrGithubAlreadyLinked
	}

	if err := s.applyProfile(user, input); err != nil {
		return nil, err
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("profile completed on session account", "user_id", user.ID)
	return user, nil
}

// applyProfile aplica a atualização parcial: campos vazios preservam o
// valor atual
func (s *AuthService) applyProfile(user *entities.User, input CompleteProfileInput) error {
	if input.FirstName != "" {
		user.FirstName = input.FirstName
	}
	if input.LastName != "" {
		user.LastName = input.LastName
	}
	if input.Bio != "" {
		user.Bio = input.Bio
	}
	if input.City != "" {
		user.City = input.City
	}
	if input.Country != "" {
		user.Country = input.Country
	}
	if input.Goals != nil {
		user.Goals = input.Goals
	}
	if input.PreferredWorkoutTimes != nil {
		user.PreferredWorkoutTimes = input.PreferredWorkoutTimes
	}

	if err := s.applyCredentials(user, input); err != nil {
		return err
	}
	return user.Validate()
}

// applyCredentials anexa a identidade pendente e a senha opcional
func (s *AuthService) applyCredentials(user *entities.User, input CompleteProfileInput) error {
	if input.GithubID != "" && !user.HasGithubIdentity() {
		githubID := input.GithubID
		user.GithubID = &githubID
	}
	if input.AvatarURL != "" && user.AvatarURL == nil {
		avatarURL := input.AvatarURL
		user.AvatarURL = &avatarURL
	}
	if input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user.PasswordHash = string(hash)
	}
	return nil
}

// Login autentica por email e senha e emite um token bearer
func (s *AuthService) Login(ctx context.Context, rawEmail, password string) (string, *entities.User, error) {
	email, err := valueobjects.NewEmail(rawEmail)
	if err != nil {
		return "", nil, domainerrors.ErrInvalidCredentials
	}

	user, err := s.userRepo.FindByEmail(ctx, email.String())
	if err != nil {
		return "", nil, err
	}
	if user == nil || user.PasswordHash == "" {
		return "", nil, domainerrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, domainerrors.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info("user authenticated", "user_id", user.ID)
	return token, user, nil
}
