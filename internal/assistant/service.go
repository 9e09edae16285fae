// Package assistant proxies a free-text message to a hosted language model
// and returns either a validated structured intent or the reply text.
package assistant

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// Completer is the upstream completion API surface.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userMessage string) (string, error)
}

type Service struct {
	client     Completer
	promptPath string
	roles      []string
}

func NewService(client Completer, promptPath string, roles []string) *Service {
	return &Service{client: client, promptPath: promptPath, roles: roles}
}

// Ask forwards message to the model under the system prompt. The prompt
// file is reloaded on every call so edits take effect without a restart;
// a load failure fails the request.
func (s *Service) Ask(ctx context.Context, message string) (Reply, error) {
	if strings.TrimSpace(message) == "" {
		return Reply{}, ErrEmptyMessage
	}

	prompt, err := os.ReadFile(s.promptPath)
	if err != nil {
		return Reply{}, fmt.Errorf("load system prompt: %w", err)
	}

	content, err := s.client.Complete(ctx, string(prompt), message)
	if err != nil {
		return Reply{}, err
	}
	return ParseReply(content, s.roles), nil
}
