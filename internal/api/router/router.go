package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/luizndev/unime-pdr/config"
	"github.com/luizndev/unime-pdr/internal/api/handler"
	"github.com/luizndev/unime-pdr/internal/api/middleware"
	"github.com/luizndev/unime-pdr/pkg/jwt"
	"github.com/luizndev/unime-pdr/pkg/redis"
	"github.com/luizndev/unime-pdr/pkg/response"
)

// Setup builds the Gin engine with the route table the front end has
// always consumed — paths are kept verbatim, including the Portuguese ones.
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(1 << 20)) // 1MB

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// open routes
	r.GET("/", func(c *gin.Context) {
		response.OK(c, response.MessageResponse{Message: "Bem vindo a api"})
	})

	r.GET("/informatica", h.Reservation.ListInformatica)
	r.GET("/multidisciplinar", h.Reservation.ListMultidisciplinar)
	r.POST("/informatica/register", h.Reservation.RegisterInformatica)
	r.POST("/multidisciplinar/register", h.Reservation.RegisterMultidisciplinar)

	authLimit := middleware.RateLimit(rdb, 10, time.Minute)
	r.POST("/auth/register", authLimit, h.Auth.Register)
	r.POST("/auth/login", authLimit, h.Auth.Login)

	r.GET("/mensagens", h.Mensagem.List)

	// routes behind the bearer token
	authorized := r.Group("")
	authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
	{
		authorized.POST("/auth/logout", h.Auth.Logout)
		authorized.GET("/auth/:id", h.Auth.GetUser)
		authorized.GET("/buscartoken/:id", h.Reservation.BuscarToken)
		authorized.GET("/minhassolicitacoes/:email", h.Reservation.MinhasSolicitacoes)
		authorized.POST("/mensagens", h.Mensagem.Create)
	}

	return r
}
