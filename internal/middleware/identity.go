package middleware

// identity.go holds the accessors for what JWTAuth stored in the echo
// context.  Handlers use ParticipantID; the cache and rate limiter use the
// string form to build keys.

import (
    "strconv"

    "github.com/labstack/echo/v4"
)

// ParticipantID returns the authenticated participant, if any.
func ParticipantID(c echo.Context) (int64, bool) {
    id, ok := c.Get(ContextParticipantID).(int64)
    return id, ok && id > 0
}

// Role returns the role claim of the authenticated participant.
func Role(c echo.Context) string {
    r, _ := c.Get(ContextRole).(string)
    return r
}

// userID renders the participant id for cache and rate-limit keys.  It
// returns "guest" when nobody is authenticated.
func userID(c echo.Context) string {
    if id, ok := ParticipantID(c); ok {
        return strconv.FormatInt(id, 10)
    }
    return "guest"
}
