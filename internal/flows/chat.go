package flows

import (
	"context"
	"fmt"
	"strings"

	"github.com/Anandkumae/recruit-track-sub000/internal/llm"
	"github.com/Anandkumae/recruit-track-sub000/internal/prompts"
)

// ChatbotAssistant answers a user turn given the full prior conversation.
// The flow is stateless: callers resend history on every request and the
// persona lives in an embedded system prompt.
func ChatbotAssistant(ctx context.Context, client llm.Client, history []llm.Turn) (string, error) {
	if len(history) == 0 {
		return "", fmt.Errorf("conversation history is empty")
	}
	if strings.TrimSpace(history[len(history)-1].Text) == "" {
		return "", fmt.Errorf("latest message is empty")
	}

	persona, err := prompts.Get("flows.json", "assistant-persona")
	if err != nil {
		return "", fmt.Errorf("failed to load assistant persona: %w", err)
	}

	reply, err := client.Chat(ctx, persona, history, llm.TierLite)
	if err != nil {
		return "", fmt.Errorf("assistant reply failed: %w", err)
	}

	reply = strings.TrimSpace(reply)
	if reply == "" {
		return "", &NoResultError{Flow: "assistant-chat"}
	}

	return reply, nil
}
