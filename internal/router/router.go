package router

import (
	"time"

	"github.com/Guimesquita15/projeto-para-a-pap/internal/config"
	"github.com/Guimesquita15/projeto-para-a-pap/internal/handler"
	"github.com/Guimesquita15/projeto-para-a-pap/internal/metrics"
	"github.com/Guimesquita15/projeto-para-a-pap/internal/middleware"
	"github.com/Guimesquita15/projeto-para-a-pap/internal/repository"
	"github.com/Guimesquita15/projeto-para-a-pap/internal/service"

	"github.com/gin-gonic/gin"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository/Geocoder ← backend clients.
// The storage backend was chosen once in main; nothing below re-checks it.
func New(cfg *config.Config, repo repository.ProdutorRepository, geo service.Geocoder, fotos service.FotoUploader) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.Timeout(time.Duration(cfg.RequestTimeoutSeconds) * time.Second))
	r.Use(middleware.RateLimiter(200, time.Minute))
	r.Use(metrics.Middleware())

	// ── Services ─────────────────────────────────────────────────────────────
	produtorSvc := service.NewProdutorService(repo, geo, fotos)
	authSvc := service.NewAuthService(repo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	produtoresH := handler.NewProdutoresHandler(produtorSvc)
	authH := handler.NewAuthHandler(authSvc)

	// ── Routes ───────────────────────────────────────────────────────────────
	r.GET("/health", handler.Health(repo))
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := r.Group("/api")
	{
		produtores := api.Group("/produtores")
		{
			produtores.POST("/registar", produtoresH.Registar)
			produtores.GET("/localizacao", produtoresH.Localizacao)
			produtores.POST("/login", middleware.LoginRateLimiter(), authH.Login)
			produtores.GET("/meus_dados/:id", authH.MeusDados)
			produtores.POST("/atualizar_perfil", authH.AtualizarPerfil)
		}

		api.GET("/estufa/status", handler.EstufaStatus())
	}

	return r
}
