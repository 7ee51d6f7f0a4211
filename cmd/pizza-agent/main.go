package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/abadojack/whatlanggo"
	"github.com/joho/godotenv"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/slicelab/pizza-agent/internal/agent"
	"github.com/slicelab/pizza-agent/internal/config"
	"github.com/slicelab/pizza-agent/internal/history"
	"github.com/slicelab/pizza-agent/internal/llm"
	"github.com/slicelab/pizza-agent/internal/pizza"
	"github.com/slicelab/pizza-agent/internal/tools"
	"github.com/slicelab/pizza-agent/pkg/log"
)

func main() {
	// A missing .env is fine; the environment may be set directly.
	_ = godotenv.Load()

	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatal("Failed to load configuration: %v", err)
	}

	ctx := context.Background()
	client, err := llm.NewGemini(ctx, cfg.LLM.APIKey, cfg.LLM.Model)
	if err != nil {
		log.Fatal("Failed to create Gemini client: %v", err)
	}
	defer client.Close()

	pizzaRepo := pizza.NewFileRepo(cfg.Storage.PizzaDBFile)
	if err := pizzaRepo.Seed(); err != nil {
		log.Fatal("Failed to seed pizza stores: %v", err)
	}

	registry := tools.NewRegistry()
	if err := tools.RegisterPizzaTools(registry, pizzaRepo); err != nil {
		log.Fatal("Failed to register tools: %v", err)
	}

	chatRepo := history.NewFileRepo(cfg.Storage.ChatHistoryFile)
	chatRepo.LoadHistory()
	if err := chatRepo.StartPeriodicSave(cfg.Storage.HistorySaveInterval); err != nil {
		log.Fatal("Failed to start periodic history save: %v", err)
	}
	defer chatRepo.StopPeriodicSave()

	a := agent.New(client, registry)
	log.Info("Starting pizza agent (model %s)", cfg.LLM.Model)

	reader := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("Sen: ")
		if !reader.Scan() {
			break
		}
		input := strings.TrimSpace(reader.Text())
		if input == "" {
			continue
		}
		if strings.EqualFold(input, "exit") {
			break
		}

		if err := chatRepo.AddMessage(history.Message{
			Role:      history.RoleUser,
			Text:      input,
			Timestamp: history.Now(),
		}); err != nil {
			log.Warn("Failed to persist user message: %v", err)
		}

		prompt := buildPrompt(chatRepo.LoadHistory(), input, cfg.Agent.ReplyLanguage)

		run := a.Run(ctx, prompt)
		for ev := range run.Events() {
			handleEvent(chatRepo, ev)
		}
		if err := run.Err(); err != nil {
			log.Error("Agent run failed: %v", err)
		}
	}

	fmt.Println("Güle güle!")
}

// handleEvent prints an agent event and mirrors it into the chat
// transcript.
func handleEvent(chatRepo *history.FileRepo, ev agent.Event) {
	var text string
	role := history.RoleTool

	switch ev.Type {
	case agent.EventAssistant:
		fmt.Println("Assistant:", ev.Text)
		role = history.RoleAssistant
		text = ev.Text
	case agent.EventToolCall:
		fmt.Println("Tool call:", ev.Name, compactJSON(ev.Args))
		text = fmt.Sprintf("%s %s", ev.Name, compactJSON(ev.Args))
	case agent.EventToolResponse:
		fmt.Println("Tool response:", compactJSON(ev.Result))
		text = "response: " + compactJSON(ev.Result)
	default:
		return
	}

	if err := chatRepo.AddMessage(history.Message{
		Role:      role,
		Text:      text,
		Timestamp: history.Now(),
	}); err != nil {
		log.Warn("Failed to persist %s message: %v", role, err)
	}
}

// buildPrompt flattens the transcript into a single prompt, appends
// the current input, and hints the reply language detected from it.
func buildPrompt(transcript []history.Message, input string, fallback language.Tag) string {
	var b strings.Builder
	for _, m := range transcript {
		b.WriteString(m.Role)
		b.WriteString(": ")
		b.WriteString(m.Text)
		b.WriteString("\n")
	}
	b.WriteString("user: ")
	b.WriteString(input)
	b.WriteString("\n(The user's language is ")
	b.WriteString(detectLanguage(input, fallback))
	b.WriteString(". Reply in that language.)")
	return b.String()
}

// detectLanguage names the input's language, falling back to the
// configured reply language when detection is unreliable (short or
// ambiguous input).
func detectLanguage(input string, fallback language.Tag) string {
	info := whatlanggo.Detect(input)
	if info.IsReliable() {
		return info.Lang.String()
	}
	return display.English.Languages().Name(fallback)
}

func compactJSON(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}
