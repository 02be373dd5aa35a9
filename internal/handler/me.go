package handler

import (
    "net/http"

    "github.com/labstack/echo/v4"
)

type sectionReq struct {
    Section string `json:"section"`
}

type neverReq struct {
    Date string `json:"date"`
}

// Me returns the authenticated participant's profile.
func (h *Handler) Me(c echo.Context) error {
    ctx, cancel := h.ctx(c)
    defer cancel()

    p, err := h.Store.GetUserInfo(ctx, viewer(c))
    if err != nil {
        return h.fail(c, err)
    }
    if p == nil {
        return c.JSON(http.StatusNotFound, echo.Map{"error": "participant not found"})
    }
    return c.JSON(http.StatusOK, p)
}

// UpdateSection proposes a new section.  The response carries the section
// actually stored, which stays unchanged when the proposal is unknown.
func (h *Handler) UpdateSection(c echo.Context) error {
    var req sectionReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    ctx, cancel := h.ctx(c)
    defer cancel()

    section, err := h.Store.UpdateUserSection(ctx, viewer(c), req.Section)
    if err != nil {
        return h.fail(c, err)
    }
    return c.JSON(http.StatusOK, echo.Map{"section": section})
}

// Nevers lists the caller's nevers, optionally only those after ?since=.
func (h *Handler) Nevers(c echo.Context) error {
    ctx, cancel := h.ctx(c)
    defer cancel()

    dates, err := h.Store.GetNevers(ctx, viewer(c), c.QueryParam("since"))
    if err != nil {
        return h.fail(c, err)
    }
    return c.JSON(http.StatusOK, echo.Map{"nevers": dates})
}

// AddNever declares the caller unavailable on a date, refusing every
// option on it.
func (h *Handler) AddNever(c echo.Context) error {
    var req neverReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    ctx, cancel := h.ctx(c)
    defer cancel()

    if err := h.Store.Never(ctx, viewer(c), req.Date); err != nil {
        return h.fail(c, err)
    }
    return c.NoContent(http.StatusNoContent)
}
