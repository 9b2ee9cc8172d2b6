package grpc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	mdwerror "github.com/msto63/calword/foundation/core/error"
	mdwerrors "github.com/msto63/calword/foundation/core/errors"
	"github.com/msto63/calword/pkg/core/logging"
)

var testInfo = &grpc.UnaryServerInfo{FullMethod: "/calword.v1.Calendar/Test"}

func TestGRPCCode(t *testing.T) {
	tests := []struct {
		code mdwerror.Code
		want codes.Code
	}{
		{mdwerror.CodeInvalidArgument, codes.InvalidArgument},
		{mdwerror.CodeInvalidFormat, codes.InvalidArgument},
		{mdwerror.CodeValueOutOfRange, codes.OutOfRange},
		{mdwerror.CodeNotFound, codes.NotFound},
		{mdwerror.CodeMissingConfig, codes.FailedPrecondition},
		{mdwerror.CodeDatabaseError, codes.Internal},
		{mdwerror.CodeServiceUnavailable, codes.Unavailable},
		{mdwerror.Code("SOMETHING_ELSE"), codes.Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			if got := GRPCCode(tt.code); got != tt.want {
				t.Errorf("GRPCCode(%s) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}

func TestStatusFromError(t *testing.T) {
	if StatusFromError(nil) != nil {
		t.Error("StatusFromError(nil) should be nil")
	}

	invalid := mdwerrors.InvalidArgument(mdwerrors.ModuleTimex, "AdvanceWorkingDays", "day count must be a non-negative integer")
	tests := []struct {
		name string
		err  error
		want codes.Code
	}{
		{"invalid argument", invalid, codes.InvalidArgument},
		{"wrapped", fmt.Errorf("call failed: %w", invalid), codes.InvalidArgument},
		{"status kept", status.Error(codes.NotFound, "gone"), codes.NotFound},
		{"canceled", context.Canceled, codes.Canceled},
		{"deadline", fmt.Errorf("slow: %w", context.DeadlineExceeded), codes.DeadlineExceeded},
		{"plain", errors.New("boom"), codes.Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := status.Code(StatusFromError(tt.err)); got != tt.want {
				t.Errorf("status code = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestErrorFromStatus(t *testing.T) {
	err := ErrorFromStatus(status.Error(codes.InvalidArgument, "day count must be a non-negative integer"))
	if !mdwerror.HasCode(err, mdwerror.CodeInvalidArgument) {
		t.Errorf("ErrorFromStatus() = %v, want invalid argument", err)
	}
	if err.Error() != "day count must be a non-negative integer" {
		t.Errorf("message = %q", err.Error())
	}

	plain := errors.New("plain")
	if ErrorFromStatus(plain) != plain {
		t.Error("non-status errors should pass through")
	}
	if ErrorFromStatus(nil) != nil {
		t.Error("ErrorFromStatus(nil) should be nil")
	}
}

func TestRecoveryInterceptor(t *testing.T) {
	interceptor := RecoveryInterceptor()
	_, err := interceptor(context.Background(), nil, testInfo, func(ctx context.Context, req interface{}) (interface{}, error) {
		panic("handler exploded")
	})
	if status.Code(err) != codes.Internal {
		t.Errorf("error = %v, want internal", err)
	}
}

func TestErrorInterceptor(t *testing.T) {
	interceptor := ErrorInterceptor()
	_, err := interceptor(context.Background(), nil, testInfo, func(ctx context.Context, req interface{}) (interface{}, error) {
		return nil, mdwerrors.InvalidArgument(mdwerrors.ModuleStringx, "ToOrdinalWords", "negative")
	})
	if status.Code(err) != codes.InvalidArgument {
		t.Errorf("error = %v, want invalid argument", err)
	}

	resp, err := interceptor(context.Background(), "in", testInfo, func(ctx context.Context, req interface{}) (interface{}, error) {
		return "out", nil
	})
	if err != nil || resp != "out" {
		t.Errorf("resp, err = %v, %v", resp, err)
	}
}

func TestRequestIDInterceptor(t *testing.T) {
	interceptor := RequestIDInterceptor()

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(RequestIDHeader, "req-42"))
	var seen string
	_, _ = interceptor(ctx, nil, testInfo, func(ctx context.Context, req interface{}) (interface{}, error) {
		seen = GetRequestID(ctx)
		return nil, nil
	})
	if seen != "req-42" {
		t.Errorf("request ID = %q, want req-42", seen)
	}

	_, _ = interceptor(context.Background(), nil, testInfo, func(ctx context.Context, req interface{}) (interface{}, error) {
		seen = GetRequestID(ctx)
		return nil, nil
	})
	if len(seen) != 36 {
		t.Errorf("generated request ID = %q, want a UUID", seen)
	}
}

func TestRequestIDInterceptor_HeaderFailureLogged(t *testing.T) {
	var buf bytes.Buffer
	previous := currentLogger()
	SetLogger(logging.Wrap(logging.NewLogger(logging.LoggerConfig{ServiceName: "grpc", Level: "debug", Format: "json", Output: &buf})))
	t.Cleanup(func() { SetLogger(previous) })

	// no server transport stream in a plain context, so SetHeader fails
	called := false
	_, err := RequestIDInterceptor()(context.Background(), nil, testInfo, func(ctx context.Context, req interface{}) (interface{}, error) {
		called = true
		return nil, nil
	})
	if err != nil || !called {
		t.Fatalf("handler called = %v, err = %v", called, err)
	}
	if !strings.Contains(buf.String(), "Failed to set request ID header") {
		t.Errorf("debug entry missing in %q", buf.String())
	}
}

func TestWithRequestID(t *testing.T) {
	ctx := WithRequestID(context.Background(), "abc")
	if got := GetRequestID(ctx); got != "abc" {
		t.Errorf("GetRequestID() = %q, want abc", got)
	}
	if got := GetRequestID(context.Background()); got != "" {
		t.Errorf("GetRequestID() = %q, want empty", got)
	}
}

func TestServerAddress(t *testing.T) {
	cfg := DefaultServerConfig()
	cfg.Port = 0
	srv := NewServer(cfg)
	if srv.GRPCServer() == nil {
		t.Fatal("GRPCServer() returned nil")
	}
	if srv.Address() != "127.0.0.1:0" {
		t.Errorf("Address() = %q", srv.Address())
	}
	if err := srv.Listen(); err != nil {
		t.Fatalf("Listen() error = %v", err)
	}
	defer srv.listener.Close()
	if srv.Address() == "127.0.0.1:0" {
		t.Error("Address() should report the bound port")
	}
	srv.Stop()
}
