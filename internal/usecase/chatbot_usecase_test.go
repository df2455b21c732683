package usecase

import (
	"strings"
	"testing"

	"mindcare-backend/internal/domain/entity"
)

func TestBuildBotPromptNoHistory(t *testing.T) {
	if got := buildBotPrompt(nil, "help me relax"); got != "help me relax" {
		t.Errorf("buildBotPrompt = %q, want the bare query", got)
	}
}

func TestBuildBotPromptIncludesHistory(t *testing.T) {
	history := []entity.BotMessage{
		{UserMessage: "I feel anxious", AIMessage: "Let's try a breathing exercise."},
	}

	got := buildBotPrompt(history, "it helped a little")
	if !strings.Contains(got, "I feel anxious") {
		t.Error("prompt missing earlier user message")
	}
	if !strings.Contains(got, "breathing exercise") {
		t.Error("prompt missing earlier assistant message")
	}
	if !strings.HasSuffix(got, "it helped a little") {
		t.Error("prompt should end with the new query")
	}
}

func TestBuildBotPromptWindowsHistory(t *testing.T) {
	history := make([]entity.BotMessage, botHistoryWindow+5)
	for i := range history {
		history[i] = entity.BotMessage{UserMessage: "msg", AIMessage: "reply"}
	}
	history[0].UserMessage = "the very first message"

	got := buildBotPrompt(history, "latest")
	if strings.Contains(got, "the very first message") {
		t.Error("prompt should drop history beyond the window")
	}
}
