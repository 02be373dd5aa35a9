package handler

import (
    "net/http"
    "strings"
    "time"

    "github.com/labstack/echo/v4"
    "go.uber.org/zap"

    "github.com/iliyamo/timekeeper/internal/queue"
    "github.com/iliyamo/timekeeper/internal/utils"
)

// generatedPasswordLen is the length of passwords issued by Reset.
const generatedPasswordLen = 12

// ----- DTOs -----

type loginReq struct {
    Name     string `json:"name"`
    Password string `json:"password"`
}

type resetReq struct {
    Name string `json:"name"`
}

type tokenPart struct {
    Token   string    `json:"token"`
    Expires time.Time `json:"expires"`
}

type participantPart struct {
    ID        int64  `json:"id"`
    Name      string `json:"name"`
    Organizer bool   `json:"organizer"`
}

type loginResp struct {
    Participant participantPart `json:"participant"`
    Access      tokenPart       `json:"access"`
}

// Login verifies a name and password and returns an access token.
func (h *Handler) Login(c echo.Context) error {
    var req loginReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    req.Name = strings.TrimSpace(req.Name)
    if req.Name == "" || req.Password == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "name/password required"})
    }

    ctx, cancel := h.ctx(c)
    defer cancel()

    cred, err := h.Store.GetCredentials(ctx, req.Name)
    if err != nil {
        return h.fail(c, err)
    }
    if cred == nil || !utils.VerifyPassword(cred.PasswordHash, req.Password) {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
    }

    access, err := utils.NewAccessToken(h.Cfg.JWTSecret, cred.ID, utils.RoleFor(cred.Organizer), h.Cfg.AccessTTLMin)
    if err != nil {
        return h.fail(c, err)
    }
    return c.JSON(http.StatusOK, loginResp{
        Participant: participantPart{ID: cred.ID, Name: cred.Name, Organizer: cred.Organizer},
        Access:      tokenPart{Token: access.Token, Expires: access.Exp},
    })
}

// Reset replaces a participant's password with a generated one and asks
// the mail collaborator to deliver it.  Unknown names get the same 202 so
// the route does not reveal who is registered.
func (h *Handler) Reset(c echo.Context) error {
    var req resetReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    req.Name = strings.TrimSpace(req.Name)
    if req.Name == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "name required"})
    }
    if h.Publisher == nil {
        return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "password reset unavailable"})
    }

    ctx, cancel := h.ctx(c)
    defer cancel()

    id, ok, err := h.Store.GetUserID(ctx, req.Name)
    if err != nil {
        return h.fail(c, err)
    }
    if !ok {
        return c.NoContent(http.StatusAccepted)
    }
    info, err := h.Store.GetUserInfo(ctx, id)
    if err != nil {
        return h.fail(c, err)
    }
    if info == nil || info.Email == "" {
        h.Log.Warn("reset requested without email on file", zap.Int64("participant", id))
        return c.NoContent(http.StatusAccepted)
    }

    plain, err := utils.RandomPassword(generatedPasswordLen)
    if err != nil {
        return h.fail(c, err)
    }
    hash, err := utils.HashPassword(plain, h.Cfg.BcryptCost)
    if err != nil {
        return h.fail(c, err)
    }
    if err := h.Store.SetPassword(ctx, id, hash); err != nil {
        return h.fail(c, err)
    }

    ev := queue.PasswordResetEvent{
        ParticipantID: id,
        Name:          info.Name,
        Email:         info.Email,
        Password:      plain,
        RequestedAt:   time.Now().UTC().Format(time.RFC3339),
    }
    if err := h.Publisher.PublishPasswordReset(ctx, ev); err != nil {
        h.Log.Error("reset not published", zap.Int64("participant", id), zap.Error(err))
        return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "password reset unavailable"})
    }
    return c.NoContent(http.StatusAccepted)
}
