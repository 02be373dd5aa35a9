package handler

import (
    "net/http"
    "strings"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/timekeeper/internal/validate"
)

type eventReq struct {
    Name        string `json:"name"`
    VenueID     int64  `json:"venueId"`
    Description string `json:"description"`
}

type dateTimeReq struct {
    Date     string `json:"date"`
    Time     string `json:"time"`
    Duration string `json:"duration"`
}

type closeReq struct {
    DateTimeID int64 `json:"dateTimeId"`
}

// Events lists the ids of events matching the query string
// (?name=, ?description=, ?venueId=, ?dateTimeId=, ?id=).
func (h *Handler) Events(c echo.Context) error {
    f, err := queryFilter(c)
    if err != nil {
        return h.fail(c, err)
    }
    ctx, cancel := h.ctx(c)
    defer cancel()

    ids, err := h.Store.GetEvents(ctx, f)
    if err != nil {
        return h.fail(c, err)
    }
    return c.JSON(http.StatusOK, echo.Map{"ids": ids})
}

// CreateEvent creates an open event at a venue.
func (h *Handler) CreateEvent(c echo.Context) error {
    var req eventReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    req.Name = strings.TrimSpace(req.Name)
    if req.Name == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "name required"})
    }
    ctx, cancel := h.ctx(c)
    defer cancel()

    id, err := h.Store.CreateEvent(ctx, req.Name, req.VenueID, req.Description)
    if err != nil {
        return h.fail(c, err)
    }
    c.Response().Header().Set(echo.HeaderLocation, "/v1/events/"+itoa(id))
    return c.JSON(http.StatusCreated, echo.Map{"id": id})
}

// Event returns one event with its options, each annotated with the
// caller's own answer.
func (h *Handler) Event(c echo.Context) error {
    id, err := pathID(c, "id")
    if err != nil {
        return h.fail(c, err)
    }
    ctx, cancel := h.ctx(c)
    defer cancel()

    ev, err := h.Store.GetEvent(ctx, id, viewer(c))
    if err != nil {
        return h.fail(c, err)
    }
    if ev == nil {
        return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
    }
    return c.JSON(http.StatusOK, ev)
}

// CreateDateTime adds a candidate option to an event.  Participants with a
// never on that date are recorded as refusing it straight away.
func (h *Handler) CreateDateTime(c echo.Context) error {
    id, err := pathID(c, "id")
    if err != nil {
        return h.fail(c, err)
    }
    var req dateTimeReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    ctx, cancel := h.ctx(c)
    defer cancel()

    dt, err := h.Store.CreateDateTime(ctx, id, req.Date, req.Time, req.Duration)
    if err != nil {
        return h.fail(c, err)
    }
    return c.JSON(http.StatusCreated, echo.Map{"id": dt})
}

// CloseEvent fixes the event to one of its options. Reopening is not
// offered over HTTP, so the option is required.
func (h *Handler) CloseEvent(c echo.Context) error {
    id, err := pathID(c, "id")
    if err != nil {
        return h.fail(c, err)
    }
    var req closeReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    if err := validate.ID("dateTimeId", req.DateTimeID); err != nil {
        return h.fail(c, err)
    }
    ctx, cancel := h.ctx(c)
    defer cancel()

    if err := h.Store.CloseEvent(ctx, id, req.DateTimeID); err != nil {
        return h.fail(c, err)
    }
    return c.JSON(http.StatusOK, echo.Map{"closed": true, "dateTimeId": req.DateTimeID})
}
