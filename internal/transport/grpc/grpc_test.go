package grpc

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/nadzzz/shopvoice/internal/message"
	"github.com/nadzzz/shopvoice/internal/transport"
)

func dial(t *testing.T, handler transport.Handler) *grpc.ClientConn {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())
	tr := New(0)
	done := make(chan error, 1)
	go func() { done <- tr.Serve(ctx, lis, handler) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.ForceCodec(Codec{})),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		conn.Close()
		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Error("grpc server did not stop")
		}
	})
	return conn
}

func TestProcessCommand(t *testing.T) {
	var got message.Command
	conn := dial(t, func(_ context.Context, cmd *message.Command) (*message.VoiceCommandResult, error) {
		got = *cmd
		return &message.VoiceCommandResult{Success: true, Action: "shopping.clear_list", Response: "I've cleared your shopping list."}, nil
	})

	var res message.VoiceCommandResult
	err := conn.Invoke(context.Background(), "/"+ServiceName+"/ProcessCommand",
		&message.Command{Text: "clear my list", UserID: "3", Language: "en"}, &res)

	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "shopping.clear_list", res.Action)
	assert.Equal(t, "I've cleared your shopping list.", res.Response)
	assert.Equal(t, "clear my list", got.Text)
	assert.Equal(t, "3", got.UserID)
}

func TestProcessCommandErrors(t *testing.T) {
	tests := map[string]struct {
		text     string
		err      error
		wantCode codes.Code
	}{
		"empty command": {text: " ", wantCode: codes.InvalidArgument},
		"handler error": {text: "add milk", err: errors.New("boom"), wantCode: codes.Internal},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			conn := dial(t, func(context.Context, *message.Command) (*message.VoiceCommandResult, error) {
				return nil, tt.err
			})

			var res message.VoiceCommandResult
			err := conn.Invoke(context.Background(), "/"+ServiceName+"/ProcessCommand", &message.Command{Text: tt.text}, &res)

			require.Error(t, err)
			assert.Equal(t, tt.wantCode, status.Code(err))
		})
	}
}

func TestListLanguages(t *testing.T) {
	conn := dial(t, nil)

	var res ListLanguagesResponse
	err := conn.Invoke(context.Background(), "/"+ServiceName+"/ListLanguages", &ListLanguagesRequest{}, &res)

	require.NoError(t, err)
	require.Len(t, res.Languages, 9)
	assert.Equal(t, "de-DE", res.Languages[3].Code)
}

func TestCodec(t *testing.T) {
	c := Codec{}
	assert.Equal(t, "json", c.Name())

	data, err := c.Marshal(&message.Command{Text: "add milk"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"command":"add milk"}`, string(data))

	var cmd message.Command
	require.NoError(t, c.Unmarshal([]byte(`{"command":"add bread","language":"fr"}`), &cmd))
	assert.Equal(t, "add bread", cmd.Text)
	assert.Equal(t, "fr", cmd.Language)
}

func TestServiceInfo(t *testing.T) {
	srv := grpc.NewServer(grpc.ForceServerCodec(Codec{}))
	srv.RegisterService(&serviceDesc, &server{})

	info, ok := srv.GetServiceInfo()[ServiceName]
	require.True(t, ok)
	assert.Nil(t, info.Metadata)
	names := make([]string, 0, len(info.Methods))
	for _, m := range info.Methods {
		names = append(names, m.Name)
	}
	assert.ElementsMatch(t, []string{"ProcessCommand", "ListLanguages"}, names)
}
