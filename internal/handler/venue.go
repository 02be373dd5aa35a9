package handler

import (
    "net/http"
    "strings"

    "github.com/labstack/echo/v4"
)

type venueReq struct {
    Name    string `json:"name"`
    Address string `json:"address"`
}

// Venues lists venues matching the query string (?name=, ?address=, ?id=).
func (h *Handler) Venues(c echo.Context) error {
    f, err := queryFilter(c)
    if err != nil {
        return h.fail(c, err)
    }
    ctx, cancel := h.ctx(c)
    defer cancel()

    venues, err := h.Store.GetVenues(ctx, f)
    if err != nil {
        return h.fail(c, err)
    }
    return c.JSON(http.StatusOK, venues)
}

// CreateVenue answers 201 for a new venue and 200 when one with the same
// name already existed; either way the body carries its id.
func (h *Handler) CreateVenue(c echo.Context) error {
    var req venueReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    req.Name = strings.TrimSpace(req.Name)
    if req.Name == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "name required"})
    }
    ctx, cancel := h.ctx(c)
    defer cancel()

    res, err := h.Store.CreateVenue(ctx, req.Name, req.Address)
    if err != nil {
        return h.fail(c, err)
    }
    status := http.StatusCreated
    if res.Existed {
        status = http.StatusOK
    }
    return c.JSON(status, echo.Map{"id": res.ID, "existed": res.Existed})
}
