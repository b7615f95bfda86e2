// Package transport defines the interface for pluggable command transports.
//
// Each transport (HTTP, gRPC, NATS) implements this interface and hands
// every decoded command to the same Handler. The pipeline doesn't care how
// commands arrive; it only works with the Transport contract.
package transport

import (
	"context"

	"github.com/nadzzz/shopvoice/internal/message"
)

// Handler processes one command and returns its result.
// The pipeline provides this handler to each transport.
type Handler func(ctx context.Context, cmd *message.Command) (*message.VoiceCommandResult, error)

// Transport is the interface that every transport adapter must implement.
type Transport interface {
	// Name returns the transport identifier (e.g., "http", "grpc", "nats").
	Name() string

	// Listen starts accepting commands and passes them to the handler.
	// It blocks until the context is cancelled.
	Listen(ctx context.Context, handler Handler) error

	// Close gracefully shuts down the transport, draining in-flight work.
	Close() error
}
