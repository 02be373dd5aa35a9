package queue

import (
    "context"
    "encoding/json"
    "errors"
    "fmt"
    "time"

    amqp "github.com/rabbitmq/amqp091-go"
    "go.uber.org/zap"
)

// Sender delivers one reset notification.
type Sender interface {
    Send(ctx context.Context, ev PasswordResetEvent) error
}

// LogSender records deliveries in the log instead of mailing them.  The
// password itself is never logged.
type LogSender struct {
    Log *zap.Logger
}

// Send implements Sender.
func (s LogSender) Send(_ context.Context, ev PasswordResetEvent) error {
    if ev.Email == "" {
        return fmt.Errorf("participant %d has no email address", ev.ParticipantID)
    }
    s.Log.Info("password reset delivered",
        zap.Int64("participant", ev.ParticipantID),
        zap.String("name", ev.Name),
        zap.String("email", ev.Email),
        zap.String("requested_at", ev.RequestedAt))
    return nil
}

// Consumer drains PasswordResetQueue into a Sender, reconnecting with
// exponential backoff whenever the broker goes away.
type Consumer struct {
    URL    string
    Sender Sender
    Log    *zap.Logger
}

// Run blocks until ctx is cancelled and then returns ctx.Err().
func (c *Consumer) Run(ctx context.Context) error {
    backoff := time.Second
    for {
        conn, err := amqp.Dial(c.URL)
        if err != nil {
            c.Log.Warn("dial failed", zap.Error(err), zap.Duration("retry_in", backoff))
            if !sleep(ctx, backoff) {
                return ctx.Err()
            }
            if backoff < 30*time.Second {
                backoff *= 2
            }
            continue
        }
        backoff = time.Second

        err = c.consume(ctx, conn)
        _ = conn.Close()
        if ctx.Err() != nil {
            return ctx.Err()
        }
        c.Log.Warn("consume loop ended, reconnecting", zap.Error(err))
        if !sleep(ctx, 2*time.Second) {
            return ctx.Err()
        }
    }
}

func (c *Consumer) consume(ctx context.Context, conn *amqp.Connection) error {
    ch, err := conn.Channel()
    if err != nil {
        return fmt.Errorf("channel open: %w", err)
    }
    defer func() { _ = ch.Close() }()

    if err := ch.Qos(10, 0, false); err != nil {
        c.Log.Warn("set QoS failed", zap.Error(err))
    }
    if _, err := ch.QueueDeclare(PasswordResetQueue, true, false, false, false, nil); err != nil {
        return fmt.Errorf("queue declare: %w", err)
    }
    msgs, err := ch.Consume(PasswordResetQueue, "", false, false, false, false, nil)
    if err != nil {
        return fmt.Errorf("queue consume: %w", err)
    }

    for {
        select {
        case <-ctx.Done():
            return ctx.Err()
        case d, ok := <-msgs:
            if !ok {
                return errors.New("deliveries channel closed")
            }
            if err := c.Handle(ctx, d.Body); err != nil {
                c.Log.Error("handle message failed", zap.String("message_id", d.MessageId), zap.Error(err))
                _ = d.Nack(false, false) // reject without requeue to avoid tight loops
                continue
            }
            _ = d.Ack(false)
        }
    }
}

// Handle decodes one message body and passes it to the Sender.
func (c *Consumer) Handle(ctx context.Context, body []byte) error {
    var ev PasswordResetEvent
    if err := json.Unmarshal(body, &ev); err != nil {
        return fmt.Errorf("unmarshal: %w", err)
    }
    if ev.ParticipantID <= 0 || ev.Password == "" {
        return fmt.Errorf("incomplete reset event for %q", ev.Name)
    }
    return c.Sender.Send(ctx, ev)
}

func sleep(ctx context.Context, d time.Duration) bool {
    t := time.NewTimer(d)
    defer t.Stop()
    select {
    case <-ctx.Done():
        return false
    case <-t.C:
        return true
    }
}
