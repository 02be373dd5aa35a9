package handler

import (
    "net/http"

    "github.com/labstack/echo/v4"
)

type rsvpReq struct {
    DateTimeID int64 `json:"dateTimeId"`
    Attend     int   `json:"attend"` // -1, 0 or 1
}

// RSVP records the caller's answer for one option, replacing any earlier
// answer.
func (h *Handler) RSVP(c echo.Context) error {
    id, err := pathID(c, "id")
    if err != nil {
        return h.fail(c, err)
    }
    var req rsvpReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    ctx, cancel := h.ctx(c)
    defer cancel()

    rid, err := h.Store.RSVP(ctx, id, viewer(c), req.DateTimeID, req.Attend)
    if err != nil {
        return h.fail(c, err)
    }
    return c.JSON(http.StatusOK, echo.Map{"id": rid})
}

// RSVPs returns the caller's answers for an event keyed by option id.
func (h *Handler) RSVPs(c echo.Context) error {
    id, err := pathID(c, "id")
    if err != nil {
        return h.fail(c, err)
    }
    ctx, cancel := h.ctx(c)
    defer cancel()

    answers, err := h.Store.GetRSVPs(ctx, id, viewer(c))
    if err != nil {
        return h.fail(c, err)
    }
    return c.JSON(http.StatusOK, answers)
}

// Summary returns per-option answer counts.  Options the caller has not
// answered yet are recorded as 0 first, so they show up in the counts.
func (h *Handler) Summary(c echo.Context) error {
    id, err := pathID(c, "id")
    if err != nil {
        return h.fail(c, err)
    }
    ctx, cancel := h.ctx(c)
    defer cancel()

    summary, err := h.Store.SummarizeRSVPs(ctx, id, viewer(c))
    if err != nil {
        return h.fail(c, err)
    }
    c.Response().Header().Set(echo.HeaderCacheControl, "no-store")
    return c.JSON(http.StatusOK, summary)
}

// Details returns every participant's answer per option.  The route is
// organizer-only; the store additionally returns nothing to non-organizers.
func (h *Handler) Details(c echo.Context) error {
    id, err := pathID(c, "id")
    if err != nil {
        return h.fail(c, err)
    }
    ctx, cancel := h.ctx(c)
    defer cancel()

    detail, err := h.Store.CollectRSVPs(ctx, id, viewer(c))
    if err != nil {
        return h.fail(c, err)
    }
    return c.JSON(http.StatusOK, detail)
}
