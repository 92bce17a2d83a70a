package server_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"testing"
	"time"

	"go.uber.org/goleak"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	vaultv1 "github.com/relaysms/vault/gen/vault/v1"
	"github.com/relaysms/vault/internal/config"
	"github.com/relaysms/vault/internal/domain"
	"github.com/relaysms/vault/internal/server"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		// The gRPC server's transport goroutines wind down asynchronously
		// after Stop returns.
		goleak.IgnoreTopFunction("google.golang.org/grpc/internal/transport.(*http2Server).keepalive"),
	)
}

func testParams(grpcLn, healthLn net.Listener) server.Params {
	return server.Params{
		Cfg: &config.Config{
			Mode: "development",
			GRPC: config.GRPCConfig{Host: "127.0.0.1"},
		},
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		Handler:        vaultv1.UnimplementedEntityServer{},
		GRPCListener:   grpcLn,
		HealthListener: healthLn,
	}
}

func TestRunGracefulShutdown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	grpcLn, healthLn := newTestListener(t), newTestListener(t)
	healthAddr := healthLn.Addr().String()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Run(ctx, testParams(grpcLn, healthLn))
	}()

	waitForHealthy(t, healthAddr)

	cancel()

	select {
	case err := <-errCh:
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	case <-time.After(domain.GracefulShutdownTimeout + 5*time.Second):
		t.Fatal("shutdown did not complete within budget")
	}
}

func TestRunServesRPCs(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	grpcLn, healthLn := newTestListener(t), newTestListener(t)
	grpcAddr := grpcLn.Addr().String()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Run(ctx, testParams(grpcLn, healthLn))
	}()

	waitForHealthy(t, healthLn.Addr().String())

	conn, err := grpc.NewClient(grpcAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	// The unimplemented handler answers through the interceptor chain.
	client := vaultv1.NewEntityClient(conn)
	callCtx, callCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer callCancel()
	_, err = client.DeleteEntity(callCtx, &vaultv1.DeleteEntityRequest{LongLivedToken: "x:y.z"})
	if status.Code(err) != codes.Unimplemented {
		t.Fatalf("expected Unimplemented, got %v", err)
	}

	cancel()
	<-errCh
}

func TestHealthCheckReturns503DuringShutdown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	grpcLn, healthLn := newTestListener(t), newTestListener(t)
	healthAddr := healthLn.Addr().String()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Run(ctx, testParams(grpcLn, healthLn))
	}()

	waitForHealthy(t, healthAddr)

	cancel()

	// Health flips to 503 during the drain delay, before the server stops.
	eventually(t, 2*time.Second, func() bool {
		resp, err := httpGet(t, fmt.Sprintf("http://%s/healthz", healthAddr))
		if err != nil {
			return false // server may have already stopped
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusServiceUnavailable
	})

	<-errCh
}

func TestShutdownFuncsRun(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	grpcLn, healthLn := newTestListener(t), newTestListener(t)

	ran := make(chan struct{})
	params := testParams(grpcLn, healthLn)
	params.ShutdownFuncs = []func(context.Context) error{
		func(context.Context) error {
			close(ran)
			return nil
		},
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Run(ctx, params)
	}()

	waitForHealthy(t, healthLn.Addr().String())
	cancel()
	<-errCh

	select {
	case <-ran:
	default:
		t.Fatal("shutdown func did not run")
	}
}

// newTestListener creates a TCP listener on an OS-assigned port.
func newTestListener(t *testing.T) net.Listener {
	t.Helper()
	ln, err := (&net.ListenConfig{}).Listen(context.Background(), "tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to create test listener: %v", err)
	}
	return ln
}

// waitForHealthy polls the health endpoint until it returns 200.
func waitForHealthy(t *testing.T, addr string) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		resp, err := httpGet(t, fmt.Sprintf("http://%s/healthz", addr))
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(50 * time.Millisecond)
	}
	t.Fatalf("server at %s not healthy within 5s", addr)
}

// httpGet performs an HTTP GET with a background context (satisfies noctx linter).
func httpGet(t *testing.T, url string) (*http.Response, error) {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	return http.DefaultClient.Do(req)
}

// eventually retries f until it returns true or timeout expires.
func eventually(t *testing.T, timeout time.Duration, f func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if f() {
			return
		}
		time.Sleep(50 * time.Millisecond)
	}
	t.Fatal("condition not met within timeout")
}
