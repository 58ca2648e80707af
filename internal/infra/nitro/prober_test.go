package nitro_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rmacedo/nitro-admin-go/internal/infra/nitro"

	"go.uber.org/zap"
)

func TestProbeSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/public/v1/products" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if r.URL.Query().Get("api_token") != "tok" {
			t.Error("expected api_token query")
		}
		w.Write([]byte(`{"data":[]}`))
	}))
	defer srv.Close()

	result := nitro.NewProber(srv.Client(), zap.NewNop()).Probe(context.Background(), srv.URL+"/api/", "tok")
	if !result.OK {
		t.Errorf("expected ok result, got %+v", result)
	}
	if result.Status != http.StatusOK {
		t.Errorf("expected status 200, got %d", result.Status)
	}
}

func TestProbeRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	result := nitro.NewProber(srv.Client(), zap.NewNop()).Probe(context.Background(), srv.URL+"/api/", "bad")
	if result.OK {
		t.Error("expected failed result")
	}
	if result.Status != http.StatusForbidden {
		t.Errorf("expected status 403, got %d", result.Status)
	}
	if result.Error == "" {
		t.Error("expected error message")
	}
}

func TestProbeUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	result := nitro.NewProber(http.DefaultClient, zap.NewNop()).Probe(context.Background(), srv.URL+"/api/", "tok")
	if result.OK {
		t.Error("expected failed result")
	}
	if result.Error == "" {
		t.Error("expected error message")
	}
}
