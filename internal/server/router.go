package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fift2939-create/ather1/internal/logger"
)

type RouterConfig struct {
	ProposalHandler *ProposalHandler
	HealthHandler   *HealthHandler
	Logger          *logger.Logger
	AllowOrigins    []string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(CORS(cfg.AllowOrigins...))
	r.Use(RequestLogger(cfg.Logger))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	if h := cfg.ProposalHandler; h != nil {
		api.GET("/config", h.GetConfig)
		api.POST("/ideas", h.GenerateIdeas)
		api.POST("/proposals", h.DraftProposal)
		api.POST("/proposals/budget", h.UpdateBudgetLine)
		api.POST("/proposals/budget/groups", h.BudgetGroups)
		api.POST("/exports/docx", h.ExportDocument)
		api.POST("/exports/xlsx", h.ExportSpreadsheet)
	}

	return r
}

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}
