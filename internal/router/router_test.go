package router

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func text(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, body)
	}
}

func TestDispatch(t *testing.T) {
	rt := New(
		Route{Method: http.MethodGet, Path: "/", Handler: text("root")},
		Route{Method: http.MethodPost, Path: "/users", Handler: text("users")},
	)

	tests := []struct {
		method, path string
		code         int
		body         string
	}{
		{http.MethodGet, "/", http.StatusOK, "root"},
		{http.MethodPost, "/users", http.StatusOK, "users"},
		{http.MethodPost, "/", http.StatusNotFound, ""},
		{http.MethodHead, "/", http.StatusNotFound, ""},
		{http.MethodGet, "/users", http.StatusNotFound, ""},
		{http.MethodPost, "/users/", http.StatusNotFound, ""},
		{http.MethodGet, "/missing", http.StatusNotFound, ""},
		{http.MethodDelete, "/users", http.StatusNotFound, ""},
		{http.MethodPost, "/%75sers", http.StatusNotFound, ""},
		{http.MethodPost, "/user%73", http.StatusNotFound, ""},
		{http.MethodGet, "/%2F", http.StatusNotFound, ""},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(tt.method, tt.path, nil)
		w := httptest.NewRecorder()
		rt.ServeHTTP(w, req)

		if w.Code != tt.code {
			t.Errorf("%s %s: expected %d, got %d", tt.method, tt.path, tt.code, w.Code)
		}
		if tt.body != "" && w.Body.String() != tt.body {
			t.Errorf("%s %s: expected body %q, got %q", tt.method, tt.path, tt.body, w.Body.String())
		}
	}
}

func TestQueryStringIgnored(t *testing.T) {
	rt := New(Route{Method: http.MethodGet, Path: "/", Handler: text("root")})
	req := httptest.NewRequest(http.MethodGet, "/?name=x", nil)
	w := httptest.NewRecorder()
	rt.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestMount(t *testing.T) {
	rt := New(Route{Method: http.MethodGet, Path: "/docs/exact", Handler: text("exact")})
	rt.Mount("/docs/", text("mounted"))

	for path, want := range map[string]string{
		"/docs/index.html": "mounted",
		"/docs/":           "mounted",
		"/docs/exact":      "exact",
	} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		rt.ServeHTTP(w, req)
		if w.Body.String() != want {
			t.Errorf("%s: expected %q, got %q", path, want, w.Body.String())
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/docs", nil)
	w := httptest.NewRecorder()
	rt.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("/docs: expected 404, got %d", w.Code)
	}
}

func TestRoutes(t *testing.T) {
	rt := New(
		Route{Method: http.MethodPost, Path: "/users", Handler: text("")},
		Route{Method: http.MethodGet, Path: "/", Handler: text("")},
	)
	got := rt.Routes()
	if len(got) != 2 || got[0] != "GET /" || got[1] != "POST /users" {
		t.Errorf("unexpected routes %v", got)
	}
}

func TestDuplicateRoutePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate route")
		}
	}()
	New(
		Route{Method: http.MethodGet, Path: "/", Handler: text("a")},
		Route{Method: http.MethodGet, Path: "/", Handler: text("b")},
	)
}

func TestInvalidRoutePanics(t *testing.T) {
	for _, route := range []Route{
		{Method: "", Path: "/", Handler: text("")},
		{Method: http.MethodGet, Path: "users", Handler: text("")},
		{Method: http.MethodGet, Path: "/", Handler: nil},
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("expected panic for %+v", route)
				}
			}()
			New(route)
		}()
	}
}
