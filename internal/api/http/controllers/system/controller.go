package system

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const readyTimeout = 2 * time.Second

// Pinger — то, что проверяется в readiness (KV-хранилище истории).
type Pinger interface {
	Ping(ctx context.Context) error
}

// Controller — пробы liveness/readiness. backend — имя бэкенда истории для ответа.
type Controller struct {
	store   Pinger
	backend string
	log     *slog.Logger
}

// New создаёт системный контроллер.
func New(store Pinger, backend string, log *slog.Logger) *Controller {
	return &Controller{store: store, backend: backend, log: log}
}

// RegisterRoutes реализует http.Controller.
func (c *Controller) RegisterRoutes(r *gin.Engine) {
	r.GET("/liveness", c.live)
	r.GET("/readyness", c.ready)
}

func (c *Controller) live(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "alive"})
}

// ready отвечает 503, пока хранилище истории недоступно: без него сохранение расчётов не работает.
func (c *Controller) ready(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), readyTimeout)
	defer cancel()

	if err := c.store.Ping(pingCtx); err != nil {
		c.log.Warn("ready check failed", "storage", c.backend, "error", err)
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "storage": c.backend, "error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "ready", "storage": c.backend})
}
