// Package grpc implements the gRPC transport for shopvoice.
//
// The service is registered from a hand-written ServiceDesc and speaks JSON
// on the wire through a custom codec, so clients in any language can call
// it without generated stubs:
//
//	/shopvoice.v1.VoiceService/ProcessCommand   message.Command -> message.VoiceCommandResult
//	/shopvoice.v1.VoiceService/ListLanguages    ListLanguagesRequest -> ListLanguagesResponse
package grpc

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"strings"
	"sync"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/nadzzz/shopvoice/internal/lexicon"
	"github.com/nadzzz/shopvoice/internal/message"
	"github.com/nadzzz/shopvoice/internal/transport"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "shopvoice.v1.VoiceService"

// Codec marshals gRPC messages as JSON. Its name is the content subtype
// clients must send ("application/grpc+json").
type Codec struct{}

func (Codec) Marshal(v any) ([]byte, error)      { return json.Marshal(v) }
func (Codec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }
func (Codec) Name() string                       { return "json" }

// ListLanguagesRequest is the (empty) request of ListLanguages.
type ListLanguagesRequest struct{}

// ListLanguagesResponse lists the supported languages.
type ListLanguagesResponse struct {
	Languages []lexicon.SupportedLanguage `json:"languages"`
}

// VoiceServer is the server API of the voice service.
type VoiceServer interface {
	ProcessCommand(ctx context.Context, cmd *message.Command) (*message.VoiceCommandResult, error)
	ListLanguages(ctx context.Context, req *ListLanguagesRequest) (*ListLanguagesResponse, error)
}

var serviceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*VoiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ProcessCommand", Handler: processCommandHandler},
		{MethodName: "ListLanguages", Handler: listLanguagesHandler},
	},
	Streams: []grpc.StreamDesc{},
}

func processCommandHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(message.Command)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VoiceServer).ProcessCommand(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/ProcessCommand"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(VoiceServer).ProcessCommand(ctx, req.(*message.Command))
	}
	return interceptor(ctx, in, info, handler)
}

func listLanguagesHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListLanguagesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VoiceServer).ListLanguages(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/ListLanguages"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(VoiceServer).ListLanguages(ctx, req.(*ListLanguagesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// server adapts a transport.Handler to VoiceServer.
type server struct {
	handler transport.Handler
}

func (s *server) ProcessCommand(ctx context.Context, cmd *message.Command) (*message.VoiceCommandResult, error) {
	if strings.TrimSpace(cmd.Text) == "" {
		return nil, status.Error(codes.InvalidArgument, "command is required")
	}
	res, err := s.handler(ctx, cmd)
	if err != nil {
		slog.Error("grpc process failed", "error", err)
		return nil, status.Error(codes.Internal, "internal server error")
	}
	return res, nil
}

func (s *server) ListLanguages(context.Context, *ListLanguagesRequest) (*ListLanguagesResponse, error) {
	return &ListLanguagesResponse{Languages: lexicon.Supported()}, nil
}

// Transport implements transport.Transport over gRPC.
type Transport struct {
	port int

	mu     sync.Mutex
	server *grpc.Server
}

// New creates a new gRPC transport on the given port.
func New(port int) *Transport {
	return &Transport{port: port}
}

// Name returns the transport identifier.
func (t *Transport) Name() string { return "grpc" }

// Listen starts the gRPC server and routes incoming requests to the handler.
func (t *Transport) Listen(ctx context.Context, handler transport.Handler) error {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", t.port))
	if err != nil {
		return fmt.Errorf("grpc listen: %w", err)
	}
	slog.Info("grpc transport listening", "port", t.port)
	return t.Serve(ctx, lis, handler)
}

// Serve runs the service on lis until ctx is cancelled.
func (t *Transport) Serve(ctx context.Context, lis net.Listener, handler transport.Handler) error {
	srv := grpc.NewServer(grpc.ForceServerCodec(Codec{}))
	srv.RegisterService(&serviceDesc, &server{handler: handler})

	t.mu.Lock()
	t.server = srv
	t.mu.Unlock()

	go func() {
		<-ctx.Done()
		slog.Info("grpc transport shutting down")
		srv.GracefulStop()
	}()

	if err := srv.Serve(lis); err != nil && err != grpc.ErrServerStopped {
		return fmt.Errorf("grpc serve: %w", err)
	}
	return nil
}

// Close gracefully stops the gRPC server.
func (t *Transport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.server != nil {
		t.server.GracefulStop()
	}
	return nil
}
