// Package nats implements a request/reply transport over NATS.
//
// Each request on the subject carries a JSON message.Command; the reply is
// the JSON message.VoiceCommandResult, or {"success":false,"error":...} when
// the request cannot be decoded. Subscribers join a queue group so several
// daemons can share one subject.
package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/nadzzz/shopvoice/internal/message"
	"github.com/nadzzz/shopvoice/internal/transport"
)

// drainTimeout bounds how long Close waits for in-flight requests.
const drainTimeout = 30 * time.Second

// Options configures the NATS transport.
type Options struct {
	URL     string
	Subject string
	Queue   string

	// Timeout bounds the handling of one request.
	Timeout time.Duration
}

// Transport implements transport.Transport over NATS request/reply.
type Transport struct {
	opts Options

	mu     sync.Mutex
	conn   *nats.Conn
	closed chan struct{} // closed once the connection is fully closed
}

// New creates a new NATS transport.
func New(opts Options) *Transport {
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	return &Transport{opts: opts}
}

// Name returns the transport identifier.
func (t *Transport) Name() string { return "nats" }

// Listen connects to the server and answers requests until ctx is cancelled.
func (t *Transport) Listen(ctx context.Context, handler transport.Handler) error {
	closed := make(chan struct{})
	nc, err := nats.Connect(t.opts.URL,
		nats.Name("shopvoice"),
		nats.MaxReconnects(-1),
		nats.DrainTimeout(drainTimeout),
		nats.ClosedHandler(func(*nats.Conn) { close(closed) }),
	)
	if err != nil {
		return fmt.Errorf("failed to connect to NATS: %w", err)
	}
	t.mu.Lock()
	t.conn = nc
	t.closed = closed
	t.mu.Unlock()

	_, err = nc.QueueSubscribe(t.opts.Subject, t.opts.Queue, func(msg *nats.Msg) {
		reqCtx, cancel := context.WithTimeout(ctx, t.opts.Timeout)
		defer cancel()
		if err := msg.Respond(Reply(reqCtx, handler, msg.Data)); err != nil {
			slog.Warn("nats reply failed", "subject", msg.Subject, "error", err)
		}
	})
	if err != nil {
		nc.Close()
		return fmt.Errorf("nats subscribe %q: %w", t.opts.Subject, err)
	}

	slog.Info("nats transport listening", "url", t.opts.URL, "subject", t.opts.Subject, "queue", t.opts.Queue)

	<-ctx.Done()
	slog.Info("nats transport shutting down")
	return t.Close()
}

type errorReply struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// Reply decodes one request, runs the handler and encodes the reply.
func Reply(ctx context.Context, handler transport.Handler, data []byte) []byte {
	var cmd message.Command
	if err := json.Unmarshal(data, &cmd); err != nil {
		return encodeError("invalid json: " + err.Error())
	}
	if strings.TrimSpace(cmd.Text) == "" {
		return encodeError("Voice command is required")
	}
	res, err := handler(ctx, &cmd)
	if err != nil {
		slog.Error("nats process failed", "error", err)
		return encodeError("Internal server error")
	}
	out, err := json.Marshal(res)
	if err != nil {
		return encodeError("encoding result: " + err.Error())
	}
	return out
}

func encodeError(msg string) []byte {
	out, _ := json.Marshal(errorReply{Success: false, Error: msg})
	return out
}

// Close drains the subscription and closes the connection. It returns once
// every in-flight request has been answered.
func (t *Transport) Close() error {
	t.mu.Lock()
	nc, closed := t.conn, t.closed
	if nc == nil {
		t.mu.Unlock()
		return nil
	}
	if !nc.IsClosed() && !nc.IsDraining() {
		if err := nc.Drain(); err != nil {
			t.mu.Unlock()
			nc.Close()
			return fmt.Errorf("nats drain: %w", err)
		}
	}
	t.mu.Unlock()
	return waitClosed(closed, drainTimeout+time.Second)
}

func waitClosed(done <-chan struct{}, timeout time.Duration) error {
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case <-done:
		return nil
	case <-timer.C:
		return fmt.Errorf("nats drain: not closed after %s", timeout)
	}
}
