// Package queue_publisher publishes domain events to RabbitMQ.  Errors are
// logged and returned so callers decide whether a failed publish matters.
package queue_publisher

import (
    "context"
    "encoding/json"
    "time"

    "github.com/google/uuid"
    amqp "github.com/rabbitmq/amqp091-go"
    "go.uber.org/zap"

    q "github.com/iliyamo/timekeeper/internal/queue"
)

// Publisher dials the broker per message; resets are rare enough that a
// long-lived channel is not worth its reconnect handling.
type Publisher struct {
    URL string
    Log *zap.Logger
}

// New returns a Publisher for url.  A nil logger disables logging.
func New(url string, logger *zap.Logger) *Publisher {
    if logger == nil {
        logger = zap.NewNop()
    }
    return &Publisher{URL: url, Log: logger.Named("publisher")}
}

// PublishPasswordReset sends ev to the durable password.reset queue as a
// persistent message.
func (p *Publisher) PublishPasswordReset(ctx context.Context, ev q.PasswordResetEvent) error {
    pub, err := resetPublishing(ev, time.Now().UTC())
    if err != nil {
        p.Log.Error("marshal event failed", zap.Error(err))
        return err
    }

    conn, err := amqp.Dial(p.URL)
    if err != nil {
        p.Log.Error("dial failed", zap.Error(err))
        return err
    }
    defer func() { _ = conn.Close() }()

    ch, err := conn.Channel()
    if err != nil {
        p.Log.Error("channel open failed", zap.Error(err))
        return err
    }
    defer func() { _ = ch.Close() }()

    if _, err := ch.QueueDeclare(q.PasswordResetQueue, true, false, false, false, nil); err != nil {
        p.Log.Error("queue declare failed", zap.Error(err))
        return err
    }
    if err := ch.PublishWithContext(ctx, "", q.PasswordResetQueue, false, false, pub); err != nil {
        p.Log.Error("publish failed", zap.String("message_id", pub.MessageId), zap.Error(err))
        return err
    }
    p.Log.Debug("published", zap.String("message_id", pub.MessageId), zap.Int64("participant", ev.ParticipantID))
    return nil
}

func resetPublishing(ev q.PasswordResetEvent, now time.Time) (amqp.Publishing, error) {
    if ev.RequestedAt == "" {
        ev.RequestedAt = now.Format(time.RFC3339)
    }
    body, err := json.Marshal(ev)
    if err != nil {
        return amqp.Publishing{}, err
    }
    return amqp.Publishing{
        ContentType:  "application/json",
        DeliveryMode: amqp.Persistent,
        MessageId:    uuid.NewString(),
        Timestamp:    now,
        Body:         body,
    }, nil
}
