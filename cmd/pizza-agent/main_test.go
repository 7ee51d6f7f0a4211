package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/slicelab/pizza-agent/internal/history"
)

func TestBuildPrompt_FlattensTranscript(t *testing.T) {
	t.Parallel()

	transcript := []history.Message{
		{Role: history.RoleUser, Text: "Bana İstanbul'daki pizzacıları listele"},
		{Role: history.RoleAssistant, Text: "İki pizzacı buldum."},
		{Role: history.RoleTool, Text: `list_pizza_stores {"location":"İstanbul"}`},
	}

	prompt := buildPrompt(transcript, "Luigi's'ten bir margherita sipariş et", language.Turkish)

	lines := strings.Split(prompt, "\n")
	assert.Equal(t, "user: Bana İstanbul'daki pizzacıları listele", lines[0])
	assert.Equal(t, "assistant: İki pizzacı buldum.", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "tool: list_pizza_stores"))
	assert.Equal(t, "user: Luigi's'ten bir margherita sipariş et", lines[3])
	assert.Contains(t, prompt, "Reply in that language.")
}

func TestDetectLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		fallback language.Tag
		want     string
	}{
		{
			name:     "reliable turkish input",
			input:    "Bana İstanbul'daki pizzacıları listeler misin, teşekkür ederim",
			fallback: language.English,
			want:     "Turkish",
		},
		{
			name:     "short ambiguous input falls back",
			input:    "ok",
			fallback: language.Turkish,
			want:     "Turkish",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, detectLanguage(tt.input, tt.fallback))
		})
	}
}

func TestCompactJSON(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `{"location":"İstanbul"}`, compactJSON(map[string]any{"location": "İstanbul"}))
	assert.Equal(t, "null", compactJSON(nil))
}
