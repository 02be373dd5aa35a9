package handler // package handler exposes the Timekeeper over HTTP

import (
    "context"
    "errors"
    "net/http"
    "strconv"
    "time"

    "github.com/labstack/echo/v4"
    "go.uber.org/zap"

    "github.com/iliyamo/timekeeper/internal/config"
    "github.com/iliyamo/timekeeper/internal/middleware"
    "github.com/iliyamo/timekeeper/internal/queue"
    "github.com/iliyamo/timekeeper/internal/repository"
    "github.com/iliyamo/timekeeper/internal/validate"
)

// requestTimeout bounds every storage call made on behalf of a request.
const requestTimeout = 5 * time.Second

// ResetPublisher hands generated passwords to the mail collaborator.
type ResetPublisher interface {
    PublishPasswordReset(ctx context.Context, ev queue.PasswordResetEvent) error
}

// Handler bundles the dependencies shared by all routes.
type Handler struct {
    Cfg       config.Config
    Store     repository.Timekeeper
    Publisher ResetPublisher
    Log       *zap.Logger
}

// New returns a Handler and panics if the store is missing.
func New(cfg config.Config, store repository.Timekeeper, pub ResetPublisher, logger *zap.Logger) *Handler {
    if store == nil {
        panic("nil store passed to handler.New")
    }
    if logger == nil {
        logger = zap.NewNop()
    }
    return &Handler{Cfg: cfg, Store: store, Publisher: pub, Log: logger.Named("http")}
}

func (h *Handler) ctx(c echo.Context) (context.Context, context.CancelFunc) {
    return context.WithTimeout(c.Request().Context(), requestTimeout)
}

// fail maps store errors onto status codes.  Anything unexpected is logged
// and reported as 500 without details.
func (h *Handler) fail(c echo.Context, err error) error {
    switch {
    case errors.Is(err, validate.ErrInvalid), errors.Is(err, repository.ErrDateTimeMismatch):
        return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
    case errors.Is(err, repository.ErrNotFound):
        return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
    case errors.Is(err, repository.ErrConflict):
        return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
    case errors.Is(err, repository.ErrNotImplemented):
        return c.JSON(http.StatusNotImplemented, echo.Map{"error": "not implemented"})
    }
    h.Log.Error("request failed",
        zap.String("method", c.Request().Method),
        zap.String("route", c.Path()),
        zap.Strings("params", c.ParamValues()),
        zap.Error(err))
    return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
}

// viewer is the authenticated participant.  JWTAuth guarantees it on
// protected routes.
func viewer(c echo.Context) int64 {
    id, _ := middleware.ParticipantID(c)
    return id
}

// pathID parses a positive integer path parameter.
func pathID(c echo.Context, name string) (int64, error) {
    id, err := validate.Integer(name, c.Param(name))
    if err != nil {
        return 0, err
    }
    if err := validate.ID(name, id); err != nil {
        return 0, err
    }
    return id, nil
}

// queryFilter turns the query string into a store filter, one condition
// per parameter.
func queryFilter(c echo.Context) (repository.Filter, error) {
    raw := map[string]any{}
    for k, vs := range c.QueryParams() {
        if len(vs) > 0 {
            raw[k] = vs[0]
        }
    }
    return repository.ParseFilter(raw)
}

func itoa(id int64) string { return strconv.FormatInt(id, 10) }
