package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

// tagMW appends a marker around the next handler so the composition
// order is observable.
func tagMW(trace *[]string, name string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			*trace = append(*trace, name+">")
			next.ServeHTTP(w, r)
			*trace = append(*trace, "<"+name)
		})
	}
}

func TestChain_OutermostFirst(t *testing.T) {
	var trace []string

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		trace = append(trace, "handler")
	})

	Chain(tagMW(&trace, "a"), tagMW(&trace, "b"))(handler).
		ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	want := []string{"a>", "b>", "handler", "<b", "<a"}
	if len(trace) != len(want) {
		t.Fatalf("trace: got %v, want %v", trace, want)
	}
	for i := range want {
		if trace[i] != want[i] {
			t.Fatalf("trace: got %v, want %v", trace, want)
		}
	}
}

func TestChain_NoMiddleware(t *testing.T) {
	rec := httptest.NewRecorder()
	Chain()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusTeapot {
		t.Errorf("empty chain should pass through, got status %d", rec.Code)
	}
}
