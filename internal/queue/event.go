// Package queue defines the messages exchanged with the mail collaborator
// over RabbitMQ and the consumer that delivers them.
package queue

// PasswordResetQueue is the durable queue carrying PasswordResetEvent.
const PasswordResetQueue = "password.reset"

// PasswordResetEvent is published after a participant's password has been
// replaced with a generated one.  The consumer mails Password to Email.
type PasswordResetEvent struct {
    ParticipantID int64  `json:"participant_id"`
    Name          string `json:"name"`
    Email         string `json:"email"`
    Password      string `json:"password"`
    RequestedAt   string `json:"requested_at"` // RFC 3339, UTC
}
