package utils // package utils provides helper functions for token creation and hashing

import (
    "crypto/rand" // secure random number generation
    "math/big"    // uniform index selection for generated passwords
    "strconv"     // subject claims are decimal strings
    "time"        // time utilities for generating expirations

    "github.com/golang-jwt/jwt/v5" // JWT library for creating signed tokens
)

// Roles carried in the access token.  Organizers may create venues,
// events and options, close events and read the per-participant detail.
const (
    RoleOrganizer   = "ORGANIZER"
    RoleParticipant = "PARTICIPANT"
)

// RoleFor maps the participant's organizer flag to a token role.
func RoleFor(organizer bool) string {
    if organizer {
        return RoleOrganizer
    }
    return RoleParticipant
}

// AccessToken is a signed JWT together with its expiry.
type AccessToken struct {
    Token string    // the serialized JWT string
    Exp   time.Time // the UTC expiration time
}

// NewAccessToken builds and signs an HS256 JWT for a participant.  The
// subject is the participant id in decimal.
func NewAccessToken(secret string, participantID int64, role string, ttlMin int) (AccessToken, error) {
    now := time.Now().UTC()
    exp := now.Add(time.Duration(ttlMin) * time.Minute)
    claims := jwt.MapClaims{
        "sub":  strconv.FormatInt(participantID, 10),
        "role": role,
        "exp":  exp.Unix(),
        "iat":  now.Unix(),
    }
    signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
    if err != nil {
        return AccessToken{}, err
    }
    return AccessToken{Token: signed, Exp: exp}, nil
}

// passwordAlphabet leaves out characters that are easy to misread in a mail.
const passwordAlphabet = "abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// RandomPassword returns n characters drawn uniformly from passwordAlphabet
// using crypto/rand.  It backs the password reset flow.
func RandomPassword(n int) (string, error) {
    max := big.NewInt(int64(len(passwordAlphabet)))
    buf := make([]byte, n)
    for i := range buf {
        idx, err := rand.Int(rand.Reader, max)
        if err != nil {
            return "", err
        }
        buf[i] = passwordAlphabet[idx.Int64()]
    }
    return string(buf), nil
}
