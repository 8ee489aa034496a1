package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/rafabene/gymdir-backend/internal/handlers/middleware"
)

// Handlers agrupa os handlers registrados no router
type Handlers struct {
	Auth    *AuthHandler
	Gym     *GymHandler
	Machine *MachineHandler
	Trainer *TrainerHandler
	User    *UserHandler
}

// RegisterRoutes registra todas as rotas da API
func RegisterRoutes(router *gin.Engine, h Handlers, authMW *middleware.AuthMiddleware) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authRoutes := router.Group("/auth")
	{
		authRoutes.GET("/github", h.Auth.GithubBegin)
		authRoutes.GET("/github/callback", h.Auth.GithubCallback)
		authRoutes.GET("/success", h.Auth.Success)
		authRoutes.GET("/failure", h.Auth.Failure)
		// O cadastro pendente vive na sessão, então a rota não exige principal
		authRoutes.POST("/complete-profile", h.Auth.CompleteProfile)
		authRoutes.POST("/login", h.Auth.Login)
		authRoutes.POST("/logout", h.Auth.Logout)
		authRoutes.GET("/me", authMW.RequireUser(), h.Auth.Me)
	}

	gyms := router.Group("/gyms")
	{
		gyms.POST("", h.Gym.CreateGym)
		gyms.GET("", h.Gym.ListGyms)
		gyms.GET("/by-machine/:machineId", h.Gym.ListGymsByMachine)
		gyms.POST("/link-machine", authMW.RequireSession(), h.Gym.LinkMachine)
		gyms.GET("/:id", h.Gym.GetGym)
		gyms.PUT("/:id", h.Gym.UpdateGym)
		gyms.DELETE("/:id", h.Gym.DeleteGym)
	}

	machines := router.Group("/machines", authMW.RequireSession())
	{
		machines.POST("", h.Machine.CreateMachine)
		machines.GET("", h.Machine.ListMachines)
		machines.GET("/:id", h.Machine.GetMachine)
		machines.PUT("/:id", h.Machine.UpdateMachine)
		machines.DELETE("/:id", h.Machine.DeleteMachine)
	}

	trainers := router.Group("/trainers")
	{
		trainers.POST("/register", authMW.RequireUser(), h.Trainer.CreateTrainer)
		trainers.GET("", authMW.RequireSession(), h.Trainer.ListTrainers)
		trainers.GET("/me", authMW.RequireUser(), h.Trainer.GetMyTrainer)
		trainers.PUT("/me", authMW.RequireUser(), h.Trainer.UpdateTrainer)
		trainers.GET("/:id", authMW.RequireSession(), h.Trainer.GetTrainer)
		trainers.DELETE("/:id", authMW.RequireSession(), h.Trainer.DeleteTrainer)
	}

	// Cadastro direto não exige sessão
	router.POST("/users/register", h.User.Register)

	users := router.Group("/users", authMW.RequireSession())
	{
		users.GET("", h.User.ListUsers)
		users.GET("/:id", h.User.GetUser)
		users.DELETE("/:id", authMW.RequireUser(), h.User.DeleteUser)
	}

	router.GET("/api-docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
