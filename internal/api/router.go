package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"gorm.io/gorm"

	_ "github.com/crewbase/recruiting-system/docs"
	"github.com/crewbase/recruiting-system/internal/api/handler"
	"github.com/crewbase/recruiting-system/internal/api/middleware"
	"github.com/crewbase/recruiting-system/internal/core/domain"
	"github.com/crewbase/recruiting-system/internal/core/ports"
	"github.com/crewbase/recruiting-system/internal/infrastructure/http/handlers"
)

// Dependencies carries the constructed services the router wires into
// handlers. Construction happens in main so the dispatcher and LLM client
// lifecycles stay there.
type Dependencies struct {
	Auth         ports.AuthService
	Contractors  ports.ContractorService
	Keywords     ports.KeywordService
	Associations ports.AssociationService
	History      ports.HistoryService
	Tasks        ports.TaskService
	Resumes      ports.ResumeService
	Search       ports.ProfileSearchService

	DB        *gorm.DB
	Redis     *redis.Client
	JWTSecret string
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("recruiting"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	contractorHandler := handler.NewContractorHandler(deps.Contractors, deps.Associations, deps.History)
	keywordHandler := handler.NewKeywordHandler(deps.Keywords)
	taskHandler := handler.NewTaskHandler(deps.Tasks)
	resumeHandler := handler.NewResumeHandler(deps.Resumes)
	searchHandler := handler.NewSearchHandler(deps.Search)

	authMiddleware := middleware.Auth(deps.JWTSecret)
	staff := middleware.RBAC(domain.RoleAdmin, domain.RoleRecruiter)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes (registration is admin-only) ---
	e.POST("/auth/register", authHandler.Register, authMiddleware, adminOnly)
	e.POST("/auth/login", authHandler.Login)

	// --- Signed resume downloads (token is the credential) ---
	e.GET("/v1/resumes/signed/:token", resumeHandler.Download)

	// --- Authenticated API ---
	v1 := e.Group("/v1", authMiddleware, staff)

	v1.POST("/contractors", contractorHandler.Create)
	v1.GET("/contractors", contractorHandler.List)
	v1.GET("/contractors/:id", contractorHandler.Get)
	v1.PUT("/contractors/:id", contractorHandler.Update)
	v1.DELETE("/contractors/:id", contractorHandler.Delete, adminOnly)
	v1.PUT("/contractors/:id/keywords", contractorHandler.SetKeywords)
	v1.GET("/contractors/:id/keywords", contractorHandler.GetKeywords)
	v1.GET("/contractors/:id/history", contractorHandler.History)

	v1.GET("/keywords", keywordHandler.Search)
	v1.GET("/keywords/usage", keywordHandler.Usage)

	v1.POST("/contractors/:id/tasks", taskHandler.Create)
	v1.GET("/contractors/:id/tasks", taskHandler.List)
	v1.POST("/tasks/:id/complete", taskHandler.Complete)
	v1.DELETE("/tasks/:id", taskHandler.Delete)

	v1.POST("/resumes", resumeHandler.Upload)
	v1.POST("/resumes/parse", resumeHandler.Parse)

	v1.POST("/search/linkedin", searchHandler.LinkedIn)

	// --- Operational endpoints (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(deps.DB, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
