package httptransport

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"time"

	"github.com/NastyaGoryachaya/fav-crypto/internal/domain"
	errs "github.com/NastyaGoryachaya/fav-crypto/internal/errors"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PricesService - абстракция для получения таблицы цен.
type PricesService interface {
	Rows(ctx context.Context) ([]domain.Row, error)
	Report(ctx context.Context) (string, error)
}

// PricesHandler - HTTP-handler для таблицы цен.
type PricesHandler struct {
	logger  *slog.Logger
	svc     PricesService
	timeout time.Duration
}

func NewPricesHandler(logger *slog.Logger, svc PricesService, timeout time.Duration) *PricesHandler {
	if logger == nil {
		log.Fatal("nil logger")
	}
	if svc == nil {
		log.Fatal("nil service")
	}
	if timeout <= 0 {
		timeout = 12 * time.Second
	}
	return &PricesHandler{
		logger:  logger,
		svc:     svc,
		timeout: timeout,
	}
}

func (h *PricesHandler) RegisterRoutes(r interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}) {
	r.GET("/prices", h.GetTable)
	r.GET("/prices.json", h.GetRows)
	r.GET("/healthz", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
}

// RegisterMetrics - /metrics из переданного реестра.
func RegisterMetrics(e *echo.Echo, g prometheus.Gatherer) {
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(g, promhttp.HandlerOpts{})))
}

// GetTable - та же таблица, что печатает CLI, в text/plain.
func (h *PricesHandler) GetTable(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	out, err := h.svc.Report(ctx)
	if err != nil {
		return h.fail(c, "GetTable", err, func(status int, msg string) error {
			return c.String(status, "Error: "+msg+"\n")
		})
	}
	return c.String(http.StatusOK, out+"\n")
}

// GetRows - строки таблицы в JSON, в фиксированном порядке монет.
func (h *PricesHandler) GetRows(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	rows, err := h.svc.Rows(ctx)
	if err != nil {
		return h.fail(c, "GetRows", err, func(status int, msg string) error {
			return c.JSON(status, echo.Map{
				"error":   string(FromServiceError(err)),
				"message": msg,
			})
		})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"headers": domain.Headers,
		"rows":    rows,
	})
}

func (h *PricesHandler) fail(c echo.Context, op string, err error, write func(status int, msg string) error) error {
	code := FromServiceError(err)
	status := statusFor(code)
	h.logger.Error("prices request failed",
		slog.String("op", op),
		slog.String("code", string(code)),
		slog.String("error", err.Error()),
	)
	if status == http.StatusInternalServerError {
		return write(status, "internal server error")
	}
	return write(status, errs.Cause(err).Error())
}
