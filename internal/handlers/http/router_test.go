package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rafabene/gymdir-backend/internal/domain/entities"
	"github.com/rafabene/gymdir-backend/internal/domain/repositories"
	"github.com/rafabene/gymdir-backend/internal/domain/valueobjects"
	"github.com/rafabene/gymdir-backend/internal/handlers/dto"
	"github.com/rafabene/gymdir-backend/internal/handlers/middleware"
	"github.com/rafabene/gymdir-backend/internal/infrastructure/auth"
	"github.com/rafabene/gymdir-backend/internal/infrastructure/config"
	"github.com/rafabene/gymdir-backend/internal/infrastructure/logging"
	"github.com/rafabene/gymdir-backend/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/gymdir-backend/internal/services"
)

var setupOnce sync.Once

// testServer agrupa o router montado sobre um banco descartável e os
// repositórios usados para semear dados
type testServer struct {
	router      *gin.Engine
	tokens      *auth.TokenService
	userRepo    repositories.UserRepository
	gymRepo     repositories.GymRepository
	machineRepo repositories.MachineRepository
	trainerRepo repositories.TrainerRepository
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	setupOnce.Do(func() {
		gin.SetMode(gin.TestMode)
		dto.RegisterCustomValidators()
	})

	dsn := filepath.Join(t.TempDir(), "gymdir.db") + "?_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("falha ao abrir o banco de teste: %v", err)
	}
	if err := postgres.Migrate(db); err != nil {
		t.Fatalf("falha ao migrar o schema de teste: %v", err)
	}

	log := logging.NewSlogLogger("error")
	userRepo := postgres.NewUserRepository(db)
	gymRepo := postgres.NewGymRepository(db)
	machineRepo := postgres.NewMachineRepository(db)
	trainerRepo := postgres.NewTrainerRepository(db)
	uow := postgres.NewUnitOfWork(db)

	tokens := auth.NewTokenService(&config.JWTConfig{Secret: "test-secret", AccessExpiry: 15})
	github := auth.NewGitHub(&config.OAuthConfig{})

	authService := services.NewAuthService(userRepo, tokens, log)
	gymService := services.NewGymService(gymRepo, machineRepo, uow, log)
	machineService := services.NewMachineService(machineRepo, log)
	trainerService := services.NewTrainerService(trainerRepo, userRepo, uow, log)
	userService := services.NewUserService(userRepo, log)

	router := gin.New()
	store := cookie.NewStore([]byte("test-session-secret"))
	router.Use(sessions.Sessions("gymdir_session", store))

	RegisterRoutes(router, Handlers{
		Auth:    NewAuthHandler(authService, userService, github),
		Gym:     NewGymHandler(gymService),
		Machine: NewMachineHandler(machineService),
		Trainer: NewTrainerHandler(trainerService),
		User:    NewUserHandler(userService),
	}, middleware.NewAuthMiddleware(userRepo, tokens))

	return &testServer{
		router:      router,
		tokens:      tokens,
		userRepo:    userRepo,
		gymRepo:     gymRepo,
		machineRepo: machineRepo,
		trainerRepo: trainerRepo,
	}
}

func (s *testServer) do(t *testing.T, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("falha ao serializar o corpo: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	recorder := httptest.NewRecorder()
	s.router.ServeHTTP(recorder, req)
	return recorder
}

// bearerFor semeia um usuário e retorna o header Authorization correspondente
func (s *testServer) bearerFor(t *testing.T, rawEmail string, role entities.Role) (map[string]string, *entities.User) {
	t.Helper()

	email, err := valueobjects.NewEmail(rawEmail)
	if err != nil {
		t.Fatalf("email inválido: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("senha-forte"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt falhou: %v", err)
	}

	user := &entities.User{
		FirstName:    "Maria",
		LastName:     "Silva",
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.userRepo.Create(context.Background(), user); err != nil {
		t.Fatalf("seed do usuário falhou: %v", err)
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		t.Fatalf("geração de token falhou: %v", err)
	}
	return map[string]string{"Authorization": "Bearer " + token}, user
}

func decodeBody[T any](t *testing.T, recorder *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(recorder.Body.Bytes(), &out); err != nil {
		t.Fatalf("resposta não é JSON válido: %v\n%s", err, recorder.Body.String())
	}
	return out
}

func TestGymEndpoints(t *testing.T) {
	t.Run("criação sem nome retorna erros de validação", func(t *testing.T) {
		server := newTestServer(t)

		recorder := server.do(t, http.MethodPost, "/gyms", map[string]any{"city": "Recife"}, nil)
		if recorder.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, esperava 400\n%s", recorder.Code, recorder.Body.String())
		}

		response := decodeBody[dto.ErrorResponse](t, recorder)
		if len(response.Errors) == 0 {
			t.Error("resposta deveria detalhar os campos inválidos")
		}
	})

	t.Run("criação e busca devolvem os campos enviados", func(t *testing.T) {
		server := newTestServer(t)

		payload := map[string]any{
			"name":      "Academia Centro",
			"city":      "São Paulo",
			"country":   "BR",
			"priceTier": "$$$",
			"amenities": []string{"pool", "sauna"},
			"openingHours": []map[string]string{
				{"day": "mon", "open": "06:00", "close": "22:00"},
			},
		}

		created := server.do(t, http.MethodPost, "/gyms", payload, nil)
		if created.Code != http.StatusCreated {
			t.Fatalf("status = %d, esperava 201\n%s", created.Code, created.Body.String())
		}

		gym := decodeBody[dto.GymResponse](t, created)
		if len(gym.ID) != 24 {
			t.Fatalf("id = %q, esperava ObjectID de 24 caracteres", gym.ID)
		}

		fetched := server.do(t, http.MethodGet, "/gyms/"+gym.ID, nil, nil)
		if fetched.Code != http.StatusOK {
			t.Fatalf("status = %d, esperava 200", fetched.Code)
		}

		stored := decodeBody[dto.GymResponse](t, fetched)
		if stored.Name != "Academia Centro" || stored.PriceTier != "$$$" {
			t.Errorf("campos divergentes na busca: %+v", stored)
		}
		if len(stored.OpeningHours) != 1 || stored.OpeningHours[0].Day != "mon" {
			t.Errorf("horários não foram preservados: %+v", stored.OpeningHours)
		}
	})

	t.Run("comodidade fora do vocabulário retorna erros de validação", func(t *testing.T) {
		server := newTestServer(t)

		recorder := server.do(t, http.MethodPost, "/gyms", map[string]any{
			"name":      "Academia Centro",
			"amenities": []string{"pool", "helipad"},
		}, nil)
		if recorder.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, esperava 400\n%s", recorder.Code, recorder.Body.String())
		}

		response := decodeBody[dto.ErrorResponse](t, recorder)
		if len(response.Errors) == 0 {
			t.Error("resposta deveria detalhar os campos inválidos")
		}
	})

	t.Run("identificador fora do formato retorna 400", func(t *testing.T) {
		server := newTestServer(t)

		recorder := server.do(t, http.MethodGet, "/gyms/nao-e-objectid", nil, nil)
		if recorder.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, esperava 400", recorder.Code)
		}
	})

	t.Run("remoção de academia inexistente retorna 404", func(t *testing.T) {
		server := newTestServer(t)

		recorder := server.do(t, http.MethodDelete, "/gyms/65a0000000000000000000ff", nil, nil)
		if recorder.Code != http.StatusNotFound {
			t.Fatalf("status = %d, esperava 404", recorder.Code)
		}
	})
}

func TestLinkMachineEndpoint(t *testing.T) {
	seedGymAndMachine := func(t *testing.T, server *testServer) (string, string) {
		t.Helper()
		gym := &entities.Gym{Name: "Academia Centro", City: "São Paulo", PriceTier: entities.PriceTierStandard}
		if err := server.gymRepo.Create(context.Background(), gym); err != nil {
			t.Fatalf("seed da academia falhou: %v", err)
		}
		machine := &entities.Machine{Name: "Leg Press 45", Type: entities.MachineStrength}
		if err := server.machineRepo.Create(context.Background(), machine); err != nil {
			t.Fatalf("seed da máquina falhou: %v", err)
		}
		return gym.ID, machine.ID
	}

	t.Run("exige autenticação", func(t *testing.T) {
		server := newTestServer(t)
		gymID, machineID := seedGymAndMachine(t, server)

		recorder := server.do(t, http.MethodPost, "/gyms/link-machine", map[string]any{
			"gymId":     gymID,
			"machineId": machineID,
		}, nil)
		if recorder.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, esperava 401", recorder.Code)
		}
	})

	t.Run("vinculações repetidas acumulam em uma única entrada", func(t *testing.T) {
		server := newTestServer(t)
		gymID, machineID := seedGymAndMachine(t, server)
		headers, _ := server.bearerFor(t, "maria@example.com", entities.RoleUser)

		for i := 0; i < 2; i++ {
			recorder := server.do(t, http.MethodPost, "/gyms/link-machine", map[string]any{
				"gymId":     gymID,
				"machineId": machineID,
				"quantity":  3,
			}, headers)
			if recorder.Code != http.StatusOK {
				t.Fatalf("status = %d, esperava 200\n%s", recorder.Code, recorder.Body.String())
			}
		}

		fetched := server.do(t, http.MethodGet, "/gyms/"+gymID, nil, nil)
		gym := decodeBody[dto.GymResponse](t, fetched)
		if len(gym.Inventory) != 1 {
			t.Fatalf("inventário tem %d entradas, esperava 1", len(gym.Inventory))
		}
		if gym.Inventory[0].Quantity != 6 {
			t.Errorf("quantity = %d, esperava 6", gym.Inventory[0].Quantity)
		}
		if gym.Inventory[0].Machine == nil || gym.Inventory[0].Machine.Name != "Leg Press 45" {
			t.Errorf("resumo da máquina não foi resolvido")
		}
	})

	t.Run("quantidade omitida assume um", func(t *testing.T) {
		server := newTestServer(t)
		gymID, machineID := seedGymAndMachine(t, server)
		headers, _ := server.bearerFor(t, "maria@example.com", entities.RoleUser)

		recorder := server.do(t, http.MethodPost, "/gyms/link-machine", map[string]any{
			"gymId":     gymID,
			"machineId": machineID,
		}, headers)
		if recorder.Code != http.StatusOK {
			t.Fatalf("status = %d, esperava 200\n%s", recorder.Code, recorder.Body.String())
		}

		gym := decodeBody[dto.GymResponse](t, recorder)
		if len(gym.Inventory) != 1 || gym.Inventory[0].Quantity != 1 {
			t.Errorf("inventário inesperado: %+v", gym.Inventory)
		}
	})

	t.Run("máquina inexistente retorna 404 sem tocar o inventário", func(t *testing.T) {
		server := newTestServer(t)
		gymID, _ := seedGymAndMachine(t, server)
		headers, _ := server.bearerFor(t, "maria@example.com", entities.RoleUser)

		recorder := server.do(t, http.MethodPost, "/gyms/link-machine", map[string]any{
			"gymId":     gymID,
			"machineId": "65a0000000000000000001ff",
			"quantity":  2,
		}, headers)
		if recorder.Code != http.StatusNotFound {
			t.Fatalf("status = %d, esperava 404", recorder.Code)
		}

		fetched := server.do(t, http.MethodGet, "/gyms/"+gymID, nil, nil)
		gym := decodeBody[dto.GymResponse](t, fetched)
		if len(gym.Inventory) != 0 {
			t.Errorf("inventário deveria permanecer vazio")
		}
	})

	t.Run("busca por máquina lista as academias equipadas", func(t *testing.T) {
		server := newTestServer(t)
		gymID, machineID := seedGymAndMachine(t, server)
		headers, _ := server.bearerFor(t, "maria@example.com", entities.RoleUser)

		server.do(t, http.MethodPost, "/gyms/link-machine", map[string]any{
			"gymId":     gymID,
			"machineId": machineID,
		}, headers)

		recorder := server.do(t, http.MethodGet, "/gyms/by-machine/"+machineID, nil, nil)
		if recorder.Code != http.StatusOK {
			t.Fatalf("status = %d, esperava 200", recorder.Code)
		}
		gyms := decodeBody[[]dto.GymResponse](t, recorder)
		if len(gyms) != 1 || gyms[0].ID != gymID {
			t.Fatalf("busca por máquina retornou resultado errado")
		}
	})
}

func TestAuthEndpoints(t *testing.T) {
	t.Run("login com credenciais válidas emite token utilizável", func(t *testing.T) {
		server := newTestServer(t)
		_, user := server.bearerFor(t, "maria@example.com", entities.RoleUser)

		recorder := server.do(t, http.MethodPost, "/auth/login", map[string]any{
			"email":    "maria@example.com",
			"password": "senha-forte",
		}, nil)
		if recorder.Code != http.StatusOK {
			t.Fatalf("status = %d, esperava 200\n%s", recorder.Code, recorder.Body.String())
		}

		login := decodeBody[dto.LoginResponse](t, recorder)
		if login.Token == "" {
			t.Fatal("token vazio")
		}
		if login.User.ID != user.ID {
			t.Errorf("usuário autenticado divergente")
		}

		me := server.do(t, http.MethodGet, "/auth/me", nil, map[string]string{
			"Authorization": "Bearer " + login.Token,
		})
		if me.Code != http.StatusOK {
			t.Fatalf("status = %d, esperava 200\n%s", me.Code, me.Body.String())
		}
	})

	t.Run("login com senha errada retorna 401", func(t *testing.T) {
		server := newTestServer(t)
		server.bearerFor(t, "maria@example.com", entities.RoleUser)

		recorder := server.do(t, http.MethodPost, "/auth/login", map[string]any{
			"email":    "maria@example.com",
			"password": "senha-errada",
		}, nil)
		if recorder.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, esperava 401", recorder.Code)
		}
	})

	t.Run("oauth desabilitado responde indisponível", func(t *testing.T) {
		server := newTestServer(t)

		recorder := server.do(t, http.MethodGet, "/auth/github", nil, nil)
		if recorder.Code != http.StatusServiceUnavailable {
			t.Fatalf("status = %d, esperava 503", recorder.Code)
		}
	})

	t.Run("conclusão de cadastro anônima não assume conta existente", func(t *testing.T) {
		server := newTestServer(t)
		_, victim := server.bearerFor(t, "admin@example.com", entities.RoleAdmin)

		recorder := server.do(t, http.MethodPost, "/auth/complete-profile", map[string]any{
			"firstName": "Intrusa",
			"lastName":  "Anônima",
			"email":     victim.Email.String(),
		}, nil)
		if recorder.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, esperava 401\n%s", recorder.Code, recorder.Body.String())
		}

		// Qualquer cookie devolvido não pode virar uma sessão autenticada
		headers := map[string]string{}
		if cookies := recorder.Header().Get("Set-Cookie"); cookies != "" {
			headers["Cookie"] = cookies
		}
		me := server.do(t, http.MethodGet, "/auth/me", nil, headers)
		if me.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, esperava 401\n%s", me.Code, me.Body.String())
		}
	})
}

func TestUserRegisterEndpoint(t *testing.T) {
	t.Run("cadastro direto cria a conta e habilita o login", func(t *testing.T) {
		server := newTestServer(t)

		recorder := server.do(t, http.MethodPost, "/users/register", map[string]any{
			"firstName": "Maria",
			"lastName":  "Silva",
			"email":     "maria@example.com",
			"password":  "senha-bem-forte",
			"city":      "Recife",
		}, nil)
		if recorder.Code != http.StatusCreated {
			t.Fatalf("status = %d, esperava 201\n%s", recorder.Code, recorder.Body.String())
		}

		created := decodeBody[dto.UserResponse](t, recorder)
		if created.ID == "" || created.Role != string(entities.RoleUser) {
			t.Errorf("conta criada com id %q e papel %q", created.ID, created.Role)
		}

		login := server.do(t, http.MethodPost, "/auth/login", map[string]any{
			"email":    "maria@example.com",
			"password": "senha-bem-forte",
		}, nil)
		if login.Code != http.StatusOK {
			t.Fatalf("status = %d, esperava 200\n%s", login.Code, login.Body.String())
		}
	})

	t.Run("email já cadastrado retorna 409", func(t *testing.T) {
		server := newTestServer(t)
		server.bearerFor(t, "maria@example.com", entities.RoleUser)

		recorder := server.do(t, http.MethodPost, "/users/register", map[string]any{
			"firstName": "Maria",
			"lastName":  "Silva",
			"email":     "maria@example.com",
			"password":  "senha-bem-forte",
		}, nil)
		if recorder.Code != http.StatusConflict {
			t.Fatalf("status = %d, esperava 409\n%s", recorder.Code, recorder.Body.String())
		}
	})

	t.Run("senha curta retorna erros de validação", func(t *testing.T) {
		server := newTestServer(t)

		recorder := server.do(t, http.MethodPost, "/users/register", map[string]any{
			"firstName": "Maria",
			"lastName":  "Silva",
			"email":     "maria@example.com",
			"password":  "curta",
		}, nil)
		if recorder.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, esperava 400", recorder.Code)
		}

		response := decodeBody[dto.ErrorResponse](t, recorder)
		if len(response.Errors) == 0 {
			t.Error("resposta deveria detalhar os campos inválidos")
		}
	})
}

func TestMachineEndpoints(t *testing.T) {
	t.Run("catálogo exige autenticação", func(t *testing.T) {
		server := newTestServer(t)

		recorder := server.do(t, http.MethodGet, "/machines", nil, nil)
		if recorder.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, esperava 401", recorder.Code)
		}
	})

	t.Run("listagem pagina e busca filtra por nome", func(t *testing.T) {
		server := newTestServer(t)
		headers, _ := server.bearerFor(t, "maria@example.com", entities.RoleUser)

		for i := 0; i < 3; i++ {
			recorder := server.do(t, http.MethodPost, "/machines", map[string]any{
				"name": fmt.Sprintf("Esteira %02d", i),
				"type": "cardio",
			}, headers)
			if recorder.Code != http.StatusCreated {
				t.Fatalf("status = %d, esperava 201\n%s", recorder.Code, recorder.Body.String())
			}
		}

		listed := server.do(t, http.MethodGet, "/machines?page=1&limit=2", nil, headers)
		if listed.Code != http.StatusOK {
			t.Fatalf("status = %d, esperava 200", listed.Code)
		}
		page := decodeBody[dto.MachineListResponse](t, listed)
		if page.Total != 3 || len(page.Items) != 2 {
			t.Errorf("paginação inesperada: total=%d itens=%d", page.Total, len(page.Items))
		}

		searched := server.do(t, http.MethodGet, "/machines?name=esteira+01", nil, headers)
		if searched.Code != http.StatusOK {
			t.Fatalf("status = %d, esperava 200", searched.Code)
		}
		items := decodeBody[[]dto.MachineResponse](t, searched)
		if len(items) != 1 || items[0].Name != "Esteira 01" {
			t.Errorf("busca por nome retornou resultado errado: %+v", items)
		}
	})
}

func TestTrainerEndpoints(t *testing.T) {
	t.Run("registro cria o perfil e promove o papel", func(t *testing.T) {
		server := newTestServer(t)
		headers, user := server.bearerFor(t, "maria@example.com", entities.RoleUser)

		recorder := server.do(t, http.MethodPost, "/trainers/register", map[string]any{
			"headline":    "Especialista em força",
			"specialties": []string{"strength"},
		}, headers)
		if recorder.Code != http.StatusCreated {
			t.Fatalf("status = %d, esperava 201\n%s", recorder.Code, recorder.Body.String())
		}

		trainer := decodeBody[dto.TrainerResponse](t, recorder)
		if trainer.UserID != user.ID {
			t.Errorf("perfil não pertence ao usuário autenticado")
		}

		stored, err := server.userRepo.FindByID(context.Background(), user.ID)
		if err != nil || stored == nil {
			t.Fatalf("busca do usuário falhou: %v", err)
		}
		if stored.Role != entities.RoleTrainer {
			t.Errorf("role = %q, esperava %q", stored.Role, entities.RoleTrainer)
		}
	})

	t.Run("listagem filtra por cidade e especialidades em comum, melhor primeiro", func(t *testing.T) {
		server := newTestServer(t)
		headers, _ := server.bearerFor(t, "admin@example.com", entities.RoleAdmin)

		seed := func(email, city string, rating float64, specialties []string) *entities.Trainer {
			t.Helper()
			_, user := server.bearerFor(t, email, entities.RoleTrainer)
			trainer := &entities.Trainer{
				UserID:      user.ID,
				RatingAvg:   rating,
				Specialties: specialties,
				BaseCity:    city,
				BaseCountry: "DE",
			}
			if err := server.trainerRepo.CreateForUser(context.Background(), trainer); err != nil {
				t.Fatalf("seed do treinador falhou: %v", err)
			}
			return trainer
		}

		best := seed("rehab@example.com", "Frankfurt", 4.9, []string{"rehab"})
		second := seed("strength@example.com", "Frankfurt", 4.2, []string{"strength", "mobility"})
		seed("endurance@example.com", "Frankfurt", 5.0, []string{"endurance"})
		seed("berlin@example.com", "Berlin", 4.8, []string{"strength"})

		recorder := server.do(t, http.MethodGet,
			"/trainers?city=Frankfurt&specialties=strength,rehab", nil, headers)
		if recorder.Code != http.StatusOK {
			t.Fatalf("status = %d, esperava 200\n%s", recorder.Code, recorder.Body.String())
		}

		trainers := decodeBody[[]dto.TrainerResponse](t, recorder)
		if len(trainers) != 2 {
			t.Fatalf("retornou %d treinadores, esperava 2\n%s", len(trainers), recorder.Body.String())
		}
		if trainers[0].ID != best.ID || trainers[1].ID != second.ID {
			t.Errorf("ordem errada: %s, %s", trainers[0].ID, trainers[1].ID)
		}
	})

	t.Run("segundo registro do mesmo usuário retorna 409", func(t *testing.T) {
		server := newTestServer(t)
		headers, _ := server.bearerFor(t, "maria@example.com", entities.RoleUser)

		for i, want := range []int{http.StatusCreated, http.StatusConflict} {
			recorder := server.do(t, http.MethodPost, "/trainers/register", map[string]any{
				"headline": "Personal",
			}, headers)
			if recorder.Code != want {
				t.Fatalf("tentativa %d: status = %d, esperava %d", i+1, recorder.Code, want)
			}
		}
	})
}

func TestUserEndpoints(t *testing.T) {
	t.Run("remoção exige a permissão de admin", func(t *testing.T) {
		server := newTestServer(t)
		adminHeaders, _ := server.bearerFor(t, "admin@example.com", entities.RoleAdmin)
		userHeaders, target := server.bearerFor(t, "maria@example.com", entities.RoleUser)

		forbidden := server.do(t, http.MethodDelete, "/users/"+target.ID, nil, userHeaders)
		if forbidden.Code != http.StatusForbidden {
			t.Fatalf("status = %d, esperava 403", forbidden.Code)
		}

		allowed := server.do(t, http.MethodDelete, "/users/"+target.ID, nil, adminHeaders)
		if allowed.Code != http.StatusOK {
			t.Fatalf("status = %d, esperava 200\n%s", allowed.Code, allowed.Body.String())
		}

		stored, err := server.userRepo.FindByID(context.Background(), target.ID)
		if err != nil {
			t.Fatalf("busca falhou: %v", err)
		}
		if stored != nil {
			t.Error("usuário deveria ter sido removido")
		}
	})

	t.Run("listagem filtra por papel", func(t *testing.T) {
		server := newTestServer(t)
		headers, admin := server.bearerFor(t, "admin@example.com", entities.RoleAdmin)
		server.bearerFor(t, "maria@example.com", entities.RoleUser)

		recorder := server.do(t, http.MethodGet, "/users?role=admin", nil, headers)
		if recorder.Code != http.StatusOK {
			t.Fatalf("status = %d, esperava 200", recorder.Code)
		}
		users := decodeBody[[]dto.UserResponse](t, recorder)
		if len(users) != 1 || users[0].ID != admin.ID {
			t.Errorf("filtro de papel retornou resultado errado")
		}
	})
}
