package server

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/amwagner/askminstrel/internal/shared"
)

func TestBasicRouter(t *testing.T) {
	t.Run("routes a registered pattern", func(t *testing.T) {
		router := NewBasicRouter()
		router.Handle("GET /ping", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, "pong")
		}))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

		if rec.Code != http.StatusOK {
			t.Errorf("Expected 200, got %d", rec.Code)
		}
		if rec.Body.String() != "pong" {
			t.Errorf("Expected pong, got %q", rec.Body.String())
		}
	})

	t.Run("registers every route a handler declares", func(t *testing.T) {
		router := NewBasicRouter()
		router.Handler(&multiRouteHandler{})

		for _, path := range []string{"/one", "/two"} {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
			if rec.Code != http.StatusOK {
				t.Errorf("%s: expected 200, got %d", path, rec.Code)
			}
		}
	})

	t.Run("unknown path is 404", func(t *testing.T) {
		router := NewBasicRouter()

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

		if rec.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d", rec.Code)
		}
	})

	t.Run("middleware runs in registration order", func(t *testing.T) {
		var order []string
		tag := func(name string) Middleware {
			return func(next http.Handler) http.Handler {
				return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					order = append(order, name)
					next.ServeHTTP(w, r)
				})
			}
		}

		router := NewBasicRouter()
		router.Use(tag("first"), tag("second"))
		router.Handle("GET /ping", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			order = append(order, "handler")
		}))

		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ping", nil))

		if strings.Join(order, ",") != "first,second,handler" {
			t.Errorf("Unexpected execution order %v", order)
		}
	})
}

type multiRouteHandler struct{}

func (h *multiRouteHandler) Routes() []string {
	return []string{"GET /one", "GET /two"}
}

func (h *multiRouteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestRequestLogger(t *testing.T) {
	var buf strings.Builder
	logger := shared.NewLogger(&buf)

	router := NewBasicRouter()
	router.Use(RequestLogger(logger))
	router.Handle("GET /ping", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ping", nil))

	out := buf.String()
	if !strings.Contains(out, "/ping") {
		t.Errorf("Expected path in log output, got %q", out)
	}
	if !strings.Contains(out, "418") {
		t.Errorf("Expected status in log output, got %q", out)
	}
}

func TestRecover(t *testing.T) {
	logger := shared.NewLogger(io.Discard)

	router := NewBasicRouter()
	router.Use(Recover(logger))
	router.Handle("GET /boom", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("lookup exploded")
	}))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("Expected 500 after panic, got %d", rec.Code)
	}
}
