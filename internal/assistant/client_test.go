package assistant

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestComplete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Fatalf("unexpected auth header: %q", got)
		}
		if r.URL.Path != "/v1/chat/completions" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		for _, want := range []string{`"temperature":0.1`, "you are a fee assistant", "how much for two sites"} {
			if !strings.Contains(string(body), want) {
				t.Fatalf("request body missing %q: %s", want, string(body))
			}
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"Which role applies?"}}]}`))
	}))
	defer srv.Close()

	c := NewClient("test-key", "", srv.Client(), srv.URL)
	got, err := c.Complete(context.Background(), "you are a fee assistant", "how much for two sites")
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if got != "Which role applies?" {
		t.Fatalf("unexpected content: %q", got)
	}
}

func TestComplete_MissingAPIKey(t *testing.T) {
	c := NewClient("  ", "", nil, "")
	_, err := c.Complete(context.Background(), "sys", "msg")
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
}

func TestComplete_UpstreamErrorEmbedsStatusAndBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"rate limited"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient("test-key", "", srv.Client(), srv.URL)
	_, err := c.Complete(context.Background(), "sys", "msg")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "429") || !strings.Contains(err.Error(), "rate limited") {
		t.Fatalf("error should embed upstream status and body: %v", err)
	}
}

func TestComplete_EmptyReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	c := NewClient("test-key", "", srv.Client(), srv.URL)
	_, err := c.Complete(context.Background(), "sys", "msg")
	if !errors.Is(err, ErrEmptyReply) {
		t.Fatalf("expected ErrEmptyReply, got %v", err)
	}
}

func TestComplete_DefaultModelInPayload(t *testing.T) {
	var gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"ok"}}]}`))
	}))
	defer srv.Close()

	c := NewClient("test-key", "", srv.Client(), srv.URL)
	if _, err := c.Complete(context.Background(), "sys", "msg"); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if !strings.Contains(gotBody, `"model":"`+DefaultModel+`"`) {
		t.Fatalf("expected default model in payload: %s", gotBody)
	}
}
