package router // package router defines how HTTP routes are registered for the API

import (
    "github.com/labstack/echo/v4"

    "github.com/iliyamo/timekeeper/internal/handler"
    "github.com/iliyamo/timekeeper/internal/middleware"
    "github.com/iliyamo/timekeeper/internal/utils"
)

// Options carries the optional request middleware.  Nil entries are
// skipped.
type Options struct {
    JWTSecret string
    RateLimit echo.MiddlewareFunc // applied to /v1/auth and, after JWTAuth, to /v1
    Cache     echo.MiddlewareFunc // applied to /v1 after JWTAuth so keys can include the viewer
}

// RegisterRoutes mounts the health check, the unauthenticated /v1/auth
// routes and the protected /v1 routes on e.
func RegisterRoutes(e *echo.Echo, h *handler.Handler, opts Options) {
    e.GET("/healthz", handler.Health)

    auth := e.Group("/v1/auth", optional(opts.RateLimit)...)
    auth.POST("/login", h.Login)
    auth.POST("/reset", h.Reset)

    v1 := e.Group("/v1", middleware.JWTAuth(opts.JWTSecret))
    v1.Use(middleware.RequireRole(utils.RoleOrganizer, utils.RoleParticipant))
    v1.Use(optional(opts.RateLimit, opts.Cache)...)
    organizer := middleware.RequireRole(utils.RoleOrganizer)

    v1.GET("/me", h.Me)
    v1.PUT("/me/section", h.UpdateSection)
    v1.GET("/me/nevers", h.Nevers)
    v1.POST("/me/nevers", h.AddNever)

    v1.GET("/venues", h.Venues)
    v1.POST("/venues", h.CreateVenue, organizer)

    v1.GET("/events", h.Events)
    v1.POST("/events", h.CreateEvent, organizer)
    v1.GET("/events/:id", h.Event)
    v1.POST("/events/:id/datetimes", h.CreateDateTime, organizer)
    v1.POST("/events/:id/close", h.CloseEvent, organizer)
    v1.POST("/events/:id/rsvps", h.RSVP)
    v1.GET("/events/:id/rsvps", h.RSVPs)
    v1.GET("/events/:id/summary", h.Summary)
    v1.GET("/events/:id/details", h.Details, organizer)
}

func optional(mws ...echo.MiddlewareFunc) []echo.MiddlewareFunc {
    out := make([]echo.MiddlewareFunc, 0, len(mws))
    for _, m := range mws {
        if m != nil {
            out = append(out, m)
        }
    }
    return out
}
