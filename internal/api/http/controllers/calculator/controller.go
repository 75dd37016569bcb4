package calculator

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"ventanaCalc/internal/domain"
	"ventanaCalc/internal/ports"
)

// Controller — маршруты калькулятора: системы, расчёт, история.
type Controller struct {
	uc  ports.ICalculatorUseCase
	log *slog.Logger
}

// New создаёт контроллер калькулятора.
func New(uc ports.ICalculatorUseCase, log *slog.Logger) *Controller {
	return &Controller{uc: uc, log: log}
}

// RegisterRoutes реализует http.Controller: регистрирует маршруты на роутере.
func (c *Controller) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")

	api.GET("/systems", c.systems)
	api.POST("/calculate", c.calculate)
	api.GET("/history", c.history)
	api.POST("/history", c.save)
	api.GET("/history/:id", c.entry)
	api.DELETE("/history/:id", c.remove)
	api.DELETE("/history", c.clear)
}

// @Summary Список систем профиля
// @Tags calculator
// @Produce json
// @Success 200 {array} domain.ProfileSystem
// @Router /api/v1/systems [get]
func (c *Controller) systems(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.uc.Systems())
}

// @Summary Рассчитать раскрой
// @Description Принимает систему, ширину и высоту (числом или текстом). Ничего не сохраняет.
// @Tags calculator
// @Accept json
// @Produce json
// @Param request body CalculateRequest true "Параметры расчёта"
// @Success 200 {object} CalculateResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/calculate [post]
func (c *Controller) calculate(ctx *gin.Context) {
	var req CalculateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.log.Warn("calculate bind failed", "error", err)
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	resp := CalculateResponse{SystemID: req.SystemID, Width: float64(req.Width), Height: float64(req.Height)}
	set, ok := c.uc.Calculate(req.SystemID, resp.Width, resp.Height)
	if !ok {
		resp.Message = "enter width and height to see the cuts"
		ctx.JSON(http.StatusOK, resp)
		return
	}
	resp.Computable = true
	resp.Results = &set
	resp.Rows = domain.Rows(set)
	ctx.JSON(http.StatusOK, resp)
}

// @Summary История сохранённых расчётов
// @Tags history
// @Produce json
// @Success 200 {object} HistoryResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/history [get]
func (c *Controller) history(ctx *gin.Context) {
	list, err := c.uc.History(ctx.Request.Context())
	if err != nil {
		c.log.Error("history failed", "error", err)
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	items := make([]HistoryItem, len(list))
	for i, e := range list {
		items[i] = toHistoryItem(e)
	}
	ctx.JSON(http.StatusOK, HistoryResponse{Items: items})
}

// @Summary Сохранить расчёт
// @Tags history
// @Accept json
// @Produce json
// @Param request body SaveRequest true "Подпись и параметры"
// @Success 201 {object} HistoryItem
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/history [post]
func (c *Controller) save(ctx *gin.Context) {
	var req SaveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.log.Warn("save bind failed", "error", err)
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	entry, err := c.uc.SaveEntry(ctx.Request.Context(), req.Description, req.SystemID, float64(req.Width), float64(req.Height))
	if err != nil {
		if isInvalidInput(err) {
			c.log.Warn("save rejected", "error", err)
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		c.log.Error("save failed", "error", err)
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: "calculation not saved: " + err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, toHistoryItem(*entry))
}

// @Summary Открыть сохранённый расчёт
// @Tags history
// @Produce json
// @Param id path string true "ID записи"
// @Success 200 {object} HistoryItem
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/history/{id} [get]
func (c *Controller) entry(ctx *gin.Context) {
	entry, err := c.uc.Entry(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrEntryNotFound) {
			ctx.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
			return
		}
		c.log.Error("entry failed", "error", err)
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, toHistoryItem(*entry))
}

// @Summary Удалить запись
// @Tags history
// @Param id path string true "ID записи"
// @Success 204
// @Router /api/v1/history/{id} [delete]
func (c *Controller) remove(ctx *gin.Context) {
	if err := c.uc.RemoveEntry(ctx.Request.Context(), ctx.Param("id")); err != nil {
		c.log.Error("remove failed", "error", err)
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	ctx.Status(http.StatusNoContent)
}

// @Summary Очистить историю
// @Tags history
// @Success 204
// @Router /api/v1/history [delete]
func (c *Controller) clear(ctx *gin.Context) {
	if err := c.uc.ClearHistory(ctx.Request.Context()); err != nil {
		c.log.Error("clear failed", "error", err)
		ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	ctx.Status(http.StatusNoContent)
}

func isInvalidInput(err error) bool {
	return errors.Is(err, domain.ErrEmptyDescription) ||
		errors.Is(err, domain.ErrUnknownSystem) ||
		errors.Is(err, domain.ErrSystemUnavailable) ||
		errors.Is(err, domain.ErrNotComputable)
}
