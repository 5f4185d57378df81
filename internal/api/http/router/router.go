package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/dtroode/accounts-server/internal/api/http/handler"
	"github.com/dtroode/accounts-server/internal/api/http/middleware"
	"github.com/dtroode/accounts-server/internal/logger"
	"github.com/dtroode/accounts-server/internal/model"
	"github.com/dtroode/accounts-server/internal/service"
)

// Router wires services, middleware and handlers into a gin engine.
type Router struct {
	authService    *service.Auth
	userService    *service.User
	tokenManager   model.TokenManager
	contextManager middleware.ContextManager
	tokenLifetime  time.Duration
	logger         *logger.Logger
}

// New creates a new Router instance.
//
// Parameters:
//   - authService: registration, login and email-token flows
//   - userService: profile and avatar operations, also the identity
//     resolver for authentication
//   - tokenManager: verifies bearer tokens
//   - contextManager: carries the authenticated user per request
//   - tokenLifetime: bounds the login cookie lifetime
//   - logger: request logging
func New(
	authService *service.Auth,
	userService *service.User,
	tokenManager model.TokenManager,
	contextManager middleware.ContextManager,
	tokenLifetime time.Duration,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:    authService,
		userService:    userService,
		tokenManager:   tokenManager,
		contextManager: contextManager,
		tokenLifetime:  tokenLifetime,
		logger:         logger,
	}
}

// Register builds the gin engine with all routes and middleware.
func (r *Router) Register() *gin.Engine {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.tokenManager, r.userService, r.contextManager, r.logger)

	engine := gin.New()
	engine.Use(
		logging.Handle(),
		gin.Recovery(),
		cors.New(cors.Config{
			AllowAllOrigins: true,
			AllowMethods:    []string{"GET", "POST", "PUT", "DELETE"},
			AllowHeaders:    []string{"Authorization", "Accept", "Content-Type"},
		}),
	)

	api := engine.Group("/v1/api")
	r.registerAuthRoutes(api)
	r.registerUserRoutes(api, authenticate)

	return engine
}

func (r *Router) registerAuthRoutes(api *gin.RouterGroup) {
	authHandler := handler.NewAuth(r.authService, r.tokenLifetime, r.logger)

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/verify", authHandler.Verify)
	auth.POST("/forgot-password", authHandler.ForgotPassword)
	auth.POST("/reset-password", authHandler.ResetPassword)
}

func (r *Router) registerUserRoutes(api *gin.RouterGroup, authenticate *middleware.Authenticate) {
	userHandler := handler.NewUser(r.userService, r.contextManager, r.logger)

	users := api.Group("/users")
	users.Use(authenticate.Handle())

	users.GET("/me", middleware.RequireRole(r.contextManager, model.RoleAdmin, model.RoleUser), userHandler.Me)
	users.GET("/users", middleware.RequireRole(r.contextManager, model.RoleAdmin), userHandler.List)
	users.PUT("/name", userHandler.UpdateName)
	users.PUT("/role", userHandler.UpdateRole)
	users.PUT("/password", userHandler.UpdatePassword)
	users.POST("/avatar", userHandler.UploadAvatar)
	users.GET("/avatar", userHandler.GetAvatar)
	users.DELETE("/avatar", userHandler.DeleteAvatar)
}
