package router

import (
	"taskboard/docs"
	"taskboard/internal/app/board"
	"taskboard/internal/app/health"
	"taskboard/internal/app/task"
	"taskboard/internal/app/user"
	"taskboard/internal/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

type Router struct {
	Engine    *gin.Engine
	protected *gin.RouterGroup
}

// NewRouter builds the engine. Routes registered through the protected
// helpers require a bearer token that resolver accepts.
func NewRouter(logger *zap.Logger, origins []string, resolver middleware.Resolver) *Router {
	engine := gin.New()
	engine.Use(middleware.CORSMiddleware(origins))
	engine.Use(middleware.LoggerMiddleware(logger))
	engine.Use(gin.Recovery())

	return &Router{
		Engine:    engine,
		protected: engine.Group("", middleware.RequireAuth(resolver, logger)),
	}
}

func (r *Router) RegisterHealthRoutes(handler health.Handler) {
	health.RegisterRoutes(r.Engine, handler)
}

func (r *Router) RegisterUserRoutes(handler user.Handler) {
	user.RegisterRoutes(r.Engine, handler)
}

func (r *Router) RegisterBoardRoutes(handler board.Handler) {
	board.RegisterRoutes(r.protected, handler)
}

func (r *Router) RegisterTaskRoutes(handler task.Handler) {
	task.RegisterRoutes(r.protected, handler)
}

func (r *Router) RegisterSwaggerRoutes() {
	docs.SwaggerInfo.BasePath = "/"
	r.Engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
