package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/peoplehub/hrm-api/docs"
	"github.com/peoplehub/hrm-api/internal/api/handler"
	"github.com/peoplehub/hrm-api/internal/api/middleware"
	"github.com/peoplehub/hrm-api/internal/core/domain"
	"github.com/peoplehub/hrm-api/internal/core/ports"
	"github.com/peoplehub/hrm-api/internal/core/service"
	mongodb "github.com/peoplehub/hrm-api/internal/infrastructure/db/mongo"
	redisdb "github.com/peoplehub/hrm-api/internal/infrastructure/db/redis"
)

// crudHandler is the route surface every entity handler exposes.
type crudHandler interface {
	List(c echo.Context) error
	Get(c echo.Context) error
	Create(c echo.Context) error
	Update(c echo.Context) error
	Delete(c echo.Context) error
}

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil; entity reads then skip the cache.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("hrm"))

	// --- Dependencies ---
	var cache ports.EntityCache
	if rdb != nil {
		cache = redisdb.NewEntityCache(rdb)
	}

	tokenService := service.NewTokenService(jwtSecret, tokenTTL)
	authService := service.NewAuthService(mongodb.NewUserRepository(db), tokenService)

	deptRepo := mongodb.NewDepartmentRepository(db)
	roleRepo := mongodb.NewJobRoleRepository(db)
	deptService := service.NewDepartmentService(deptRepo, cache, log)
	roleService := service.NewJobRoleService(roleRepo, cache, log)
	empService := service.NewEmployeeService(mongodb.NewEmployeeRepository(db), deptRepo, roleRepo, cache, log)

	authHandler := handler.NewAuthHandler(authService)
	authRequired := middleware.Auth(tokenService)

	// --- Auth routes ---
	// Registration is open but reads an optional bearer token: only an
	// authenticated ADMIN may assign roles to the new account.
	e.POST("/api/auth/login", authHandler.Login)
	e.POST("/api/auth/register", authHandler.Register, middleware.OptionalAuth(tokenService))
	e.GET("/api/auth/me", authHandler.Me, authRequired)

	// --- Entity routes ---
	// Every route requires authentication; mutations are additionally gated by
	// the static write policy for their resource.
	entities := map[string]crudHandler{
		"departments": handler.NewDepartmentHandler(deptService),
		"employees":   handler.NewEmployeeHandler(empService),
		"roles":       handler.NewJobRoleHandler(roleService),
	}
	for resource, h := range entities {
		g := e.Group("/api/"+resource, authRequired)
		writeGuard := middleware.RBAC(domain.WritePolicy[resource]...)

		g.GET("", h.List)
		g.GET("/:id", h.Get)
		g.POST("", h.Create, writeGuard)
		g.PUT("/:id", h.Update, writeGuard)
		g.DELETE("/:id", h.Delete, writeGuard)
	}

	// --- Operational endpoints (no auth required) ---
	e.GET("/health", handler.NewHealthHandler().Liveness)
	e.GET("/health/ready", handler.NewReadinessHandler(db, rdb).Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
