package admin_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/helpbridge/helpbridge-web/internal/api"
	"github.com/helpbridge/helpbridge-web/internal/app/features/admin"
	uierrors "github.com/helpbridge/helpbridge-web/internal/app/features/errors"
	"github.com/helpbridge/helpbridge-web/internal/app/system/auth"
	"github.com/helpbridge/helpbridge-web/internal/app/system/flash"
)

func newHandler(t *testing.T, backend http.Handler) *admin.Handler {
	t.Helper()
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)
	logger := zap.NewNop()
	client := api.New(srv.URL, 2*time.Second, logger)
	flashQ := flash.NewQueue("test-session-key-must-be-32-chars-long", false, logger)
	refresher := admin.NewRefresher(client, time.Hour, time.Second, logger)
	t.Cleanup(refresher.Stop)
	return admin.NewHandler(client, flashQ, uierrors.NewErrorLogger(logger), refresher, logger)
}

func asAdmin(req *http.Request) *http.Request {
	return auth.WithTestUser(req, &auth.SessionUser{
		ID:    1,
		Name:  "Admin",
		Email: "admin@example.com",
		Role:  "admin",
		Token: "admin-token",
	})
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestRefresher_SnapshotAfterRefresh(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/admin/dashboard-summary":
			_ = json.NewEncoder(w).Encode(map[string]any{
				"students": map[string]int64{"total": 4, "approved": 2, "pending": 2},
			})
		case "/api/admin/recent-activities":
			_ = json.NewEncoder(w).Encode([]map[string]string{
				{"message": "New student registered", "type": "registration"},
			})
		case "/api/admin/debug":
			_, _ = w.Write([]byte("--- DEBUG INFO ---\nTotal Users in DB: 4\n--- END DEBUG ---"))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	client := api.New(srv.URL, 2*time.Second, zap.NewNop())
	refresher := admin.NewRefresher(client, time.Hour, time.Second, zap.NewNop())
	defer refresher.Stop()

	refresher.EnsureStarted("admin-token")

	var summary api.AdminSummary
	var activities []api.Activity
	deadline := time.Now().Add(3 * time.Second)
	for {
		var refreshed time.Time
		summary, activities, refreshed = refresher.Snapshot()
		if !refreshed.IsZero() || time.Now().After(deadline) {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	if summary.Students.Total != 4 {
		t.Errorf("expected 4 students in snapshot, got %d", summary.Students.Total)
	}
	if len(activities) != 1 || activities[0].Message != "New student registered" {
		t.Errorf("unexpected activities: %+v", activities)
	}
	if debug := refresher.Debug(); !strings.Contains(debug, "Total Users in DB: 4") {
		t.Errorf("unexpected debug dump: %q", debug)
	}
}

func TestRefresher_DebugFailureKeepsSummary(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/admin/dashboard-summary":
			_ = json.NewEncoder(w).Encode(map[string]any{
				"students": map[string]int64{"total": 2, "approved": 2, "pending": 0},
			})
		case "/api/admin/recent-activities":
			_ = json.NewEncoder(w).Encode([]map[string]string{})
		case "/api/admin/debug":
			http.Error(w, "not available", http.StatusNotFound)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	client := api.New(srv.URL, 2*time.Second, zap.NewNop())
	refresher := admin.NewRefresher(client, time.Hour, time.Second, zap.NewNop())
	defer refresher.Stop()

	refresher.EnsureStarted("admin-token")

	var summary api.AdminSummary
	deadline := time.Now().Add(3 * time.Second)
	for {
		var refreshed time.Time
		summary, _, refreshed = refresher.Snapshot()
		if !refreshed.IsZero() || time.Now().After(deadline) {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	if summary.Students.Total != 2 {
		t.Errorf("expected summary despite debug failure, got %d students", summary.Students.Total)
	}
	if debug := refresher.Debug(); debug != "" {
		t.Errorf("expected empty debug dump after failed fetch, got %q", debug)
	}
}

func TestHandleApprove_CallsBackendAndRedirects(t *testing.T) {
	var gotPath string
	h := newHandler(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		w.WriteHeader(http.StatusOK)
	}))

	form := url.Values{"return": {"/admin/users/students"}}
	req := httptest.NewRequest("POST", "/admin/users/42/approve", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req = withURLParam(asAdmin(req), "id", "42")

	rec := httptest.NewRecorder()
	h.HandleApprove(rec, req)

	if gotPath != "/api/admin/approve/42" {
		t.Errorf("unexpected backend path %q", gotPath)
	}
	if rec.Code != http.StatusSeeOther {
		t.Errorf("expected redirect, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/admin/users/students" {
		t.Errorf("expected redirect back to list, got %q", loc)
	}
}

func TestUserAction_RejectsOffsiteReturnURL(t *testing.T) {
	h := newHandler(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	form := url.Values{"return": {"https://evil.example.com/"}}
	req := httptest.NewRequest("POST", "/admin/users/42/suspend", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req = withURLParam(asAdmin(req), "id", "42")

	rec := httptest.NewRecorder()
	h.HandleSuspend(rec, req)

	if loc := rec.Header().Get("Location"); loc != "/admin/dashboard" {
		t.Errorf("expected fallback redirect to dashboard, got %q", loc)
	}
}

func TestHandleSeed_CallsBackend(t *testing.T) {
	called := false
	h := newHandler(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/admin/seed" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		called = true
		w.WriteHeader(http.StatusOK)
	}))

	req := asAdmin(httptest.NewRequest("POST", "/admin/seed", nil))
	rec := httptest.NewRecorder()
	h.HandleSeed(rec, req)

	if !called {
		t.Fatal("expected seed endpoint to be called")
	}
	if rec.Code != http.StatusSeeOther {
		t.Errorf("expected redirect, got %d", rec.Code)
	}
}
