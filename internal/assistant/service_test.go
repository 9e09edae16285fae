package assistant

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/feeform/feeform/internal/model"
)

type fakeCompleter struct {
	gotSystem string
	gotUser   string
	content   string
	err       error
	calls     int
}

func (f *fakeCompleter) Complete(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	f.calls++
	f.gotSystem, f.gotUser = systemPrompt, userMessage
	return f.content, f.err
}

func writePrompt(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prompt.txt")
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		t.Fatalf("write prompt: %v", err)
	}
	return path
}

func TestAsk_ForwardsPromptAndMessage(t *testing.T) {
	fc := &fakeCompleter{content: "Which role applies?"}
	svc := NewService(fc, writePrompt(t, "you are a fee assistant"), model.DefaultRoles)

	r, err := svc.Ask(context.Background(), "how much?")
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if fc.gotSystem != "you are a fee assistant" || fc.gotUser != "how much?" {
		t.Errorf("forwarded %q / %q", fc.gotSystem, fc.gotUser)
	}
	if r.Text != "Which role applies?" || r.Intent != nil {
		t.Errorf("unexpected reply: %+v", r)
	}
}

func TestAsk_StructuredReply(t *testing.T) {
	fc := &fakeCompleter{content: `{"agencyId":"A1","procedureId":7,"role":"National"}`}
	svc := NewService(fc, writePrompt(t, "prompt"), model.DefaultRoles)

	r, err := svc.Ask(context.Background(), "register me")
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if r.Intent == nil || r.Intent.AgencyID != "A1" {
		t.Fatalf("expected structured reply: %+v", r)
	}
}

func TestAsk_EmptyMessage(t *testing.T) {
	svc := NewService(&fakeCompleter{}, writePrompt(t, "prompt"), model.DefaultRoles)
	if _, err := svc.Ask(context.Background(), "   "); !errors.Is(err, ErrEmptyMessage) {
		t.Fatalf("expected ErrEmptyMessage, got %v", err)
	}
}

func TestAsk_MissingPromptFileFailsRequest(t *testing.T) {
	fc := &fakeCompleter{content: "hi"}
	svc := NewService(fc, filepath.Join(t.TempDir(), "absent.txt"), model.DefaultRoles)
	if _, err := svc.Ask(context.Background(), "hello"); err == nil {
		t.Fatal("expected error for missing prompt file")
	}
	if fc.calls != 0 {
		t.Fatal("upstream must not be called without a prompt")
	}
}

func TestAsk_PromptReloadedEachCall(t *testing.T) {
	path := writePrompt(t, "first")
	fc := &fakeCompleter{content: "ok"}
	svc := NewService(fc, path, model.DefaultRoles)

	if _, err := svc.Ask(context.Background(), "a"); err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if err := os.WriteFile(path, []byte("second"), 0644); err != nil {
		t.Fatalf("rewrite prompt: %v", err)
	}
	if _, err := svc.Ask(context.Background(), "b"); err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if fc.gotSystem != "second" {
		t.Fatalf("prompt not reloaded: %q", fc.gotSystem)
	}
}

func TestAsk_UpstreamErrorPropagates(t *testing.T) {
	fc := &fakeCompleter{err: ErrMissingAPIKey}
	svc := NewService(fc, writePrompt(t, "prompt"), model.DefaultRoles)
	if _, err := svc.Ask(context.Background(), "hello"); !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
}
