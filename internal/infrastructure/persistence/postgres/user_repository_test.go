package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/rafabene/gymdir-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/gymdir-backend/internal/domain/errors"
	"github.com/rafabene/gymdir-backend/internal/domain/repositories"
	"github.com/rafabene/gymdir-backend/internal/domain/valueobjects"
)

func seedDBUser(t *testing.T, repo repositories.UserRepository, rawEmail string) *entities.User {
	t.Helper()

	email, err := valueobjects.NewEmail(rawEmail)
	if err != nil {
		t.Fatalf("email inválido %q: %v", rawEmail, err)
	}

	user := &entities.User{
		FirstName: "Maria",
		LastName:  "Silva",
		Email:     email,
		Role:      entities.RoleUser,
	}
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("seed do usuário falhou: %v", err)
	}
	return user
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("email duplicado viola o índice único", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewUserRepository(db)
		seedDBUser(t, repo, "maria@example.com")

		email, _ := valueobjects.NewEmail("maria@example.com")
		err := repo.Create(ctx, &entities.User{
			FirstName: "Outra",
			LastName:  "Maria",
			Email:     email,
			Role:      entities.RoleUser,
		})
		if !errors.Is(err, domainerrors.ErrEmailAlreadyExists) {
			t.Fatalf("erro = %v, esperava ErrEmailAlreadyExists", err)
		}
	})

	t.Run("github_id é único apenas quando preenchido", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewUserRepository(db)

		// Dois usuários sem identidade GitHub convivem no índice parcial
		first := seedDBUser(t, repo, "maria@example.com")
		second := seedDBUser(t, repo, "joao@example.com")

		githubID := "gh-12345"
		first.GithubID = &githubID
		if err := repo.Update(ctx, first); err != nil {
			t.Fatalf("primeira vinculação falhou: %v", err)
		}

		second.GithubID = &githubID
		err := repo.Update(ctx, second)
		if !errors.Is(err, domainerrors.ErrGithubAlreadyLinked) {
			t.Fatalf("erro = %v, esperava ErrGithubAlreadyLinked", err)
		}
	})

	t.Run("busca por github_id resolve o usuário vinculado", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewUserRepository(db)

		user := seedDBUser(t, repo, "maria@example.com")
		githubID := "gh-12345"
		user.GithubID = &githubID
		if err := repo.Update(ctx, user); err != nil {
			t.Fatalf("vinculação falhou: %v", err)
		}

		found, err := repo.FindByGithubID(ctx, githubID)
		if err != nil {
			t.Fatalf("busca falhou: %v", err)
		}
		if found == nil || found.ID != user.ID {
			t.Fatalf("busca por github_id não resolveu o usuário")
		}

		missing, err := repo.FindByGithubID(ctx, "gh-desconhecido")
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if missing != nil {
			t.Error("esperava nil para github_id desconhecido")
		}
	})

	t.Run("busca por email não encontrado retorna nil sem erro", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewUserRepository(db)

		user, err := repo.FindByEmail(ctx, "ninguem@example.com")
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if user != nil {
			t.Error("esperava nil para email desconhecido")
		}
	})

	t.Run("listagem filtra por papel", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewUserRepository(db)

		seedDBUser(t, repo, "maria@example.com")
		admin := seedDBUser(t, repo, "admin@example.com")
		admin.Role = entities.RoleAdmin
		if err := repo.Update(ctx, admin); err != nil {
			t.Fatalf("promoção falhou: %v", err)
		}

		role := entities.RoleAdmin
		users, err := repo.List(ctx, repositories.UserFilters{Role: &role})
		if err != nil {
			t.Fatalf("listagem falhou: %v", err)
		}
		if len(users) != 1 || users[0].ID != admin.ID {
			t.Fatalf("filtro de papel retornou resultado errado")
		}
	})

	t.Run("remoção de usuário inexistente retorna não encontrado", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewUserRepository(db)

		err := repo.Delete(ctx, "65a0000000000000000000ff")
		if !errors.Is(err, domainerrors.ErrUserNotFound) {
			t.Fatalf("erro = %v, esperava ErrUserNotFound", err)
		}
	})
}
