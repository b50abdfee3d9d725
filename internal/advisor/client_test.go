package advisor

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if r.Header.Get("x-goog-api-key") == "" {
			t.Error("request missing API key header")
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestNewClient_EmptyKeyReturnsNil(t *testing.T) {
	if c := NewClient("", "", ""); c != nil {
		t.Fatal("NewClient with empty key should return nil")
	}
	if c := NewClient("   ", "", ""); c != nil {
		t.Fatal("NewClient with blank key should return nil")
	}
}

func TestGenerate_ParsesCandidateText(t *testing.T) {
	srv := newTestServer(t, http.StatusOK,
		`{"candidates":[{"content":{"parts":[{"text":"Looking "},{"text":"good."}]}}]}`)
	c := NewClient("test-key", srv.URL, "test-model")

	got, err := c.Generate(context.Background(), "system", "prompt")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got != "Looking good." {
		t.Fatalf("text = %q, want joined parts", got)
	}
}

func TestGenerate_Unauthorized(t *testing.T) {
	srv := newTestServer(t, http.StatusUnauthorized, `{}`)
	c := NewClient("bad-key", srv.URL, "")

	_, err := c.Generate(context.Background(), "", "prompt")
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
}

func TestGenerate_RateLimited(t *testing.T) {
	srv := newTestServer(t, http.StatusTooManyRequests, `{}`)
	c := NewClient("test-key", srv.URL, "")

	_, err := c.Generate(context.Background(), "", "prompt")
	if !errors.Is(err, ErrRateLimited) {
		t.Fatalf("err = %v, want ErrRateLimited", err)
	}
}

func TestGenerate_EmptyCandidates(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, `{"candidates":[]}`)
	c := NewClient("test-key", srv.URL, "")

	_, err := c.Generate(context.Background(), "", "prompt")
	if !errors.Is(err, ErrEmptyResponse) {
		t.Fatalf("err = %v, want ErrEmptyResponse", err)
	}
}

func TestGenerate_ServerError(t *testing.T) {
	srv := newTestServer(t, http.StatusInternalServerError, `boom`)
	c := NewClient("test-key", srv.URL, "")

	if _, err := c.Generate(context.Background(), "", "prompt"); err == nil {
		t.Fatal("Generate on 500 should fail")
	}
}
