package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"app/analytics"
	"app/models"
)

var (
	// ErrEmptyInput rejects a blank submission. Nothing changes.
	ErrEmptyInput = errors.New("empty input")
	// ErrBusy rejects a submission while another one is in flight.
	ErrBusy = errors.New("a submission is already pending")
)

// Greeting opens every conversation.
const Greeting = "Hello! I'm your AI analytics assistant. Ask me anything about your inventory data."

// fallbackReply is appended whenever the model invocation fails, so history
// still advances by a user/assistant pair.
const fallbackReply = "I encountered an error processing your request. Please try a more specific question about your inventory data."

const promptPreamble = `You are an analytics assistant for inventory tracking.

You have live access to the latest inventory data via the query results provided below.
You do not have direct SQL access, but you always see up-to-date data.

Database context:
`

// DataProvider yields the enriched dataset the filter selection is applied
// to before assembling context.
type DataProvider interface {
	Dataset(ctx context.Context) ([]models.InventoryDay, error)
}

// Conversation holds the ordered message history and drives the
// Idle -> Pending -> Idle submission cycle. History is append-only and
// single-writer: at most one model invocation is outstanding, and a second
// submit while one is pending is rejected with ErrBusy.
type Conversation struct {
	mu      sync.Mutex
	pending bool
	history []models.Message

	assembler *Assembler
	data      DataProvider
	generator Generator
	log       zerolog.Logger
}

// NewConversation seeds the history with the greeting.
func NewConversation(assembler *Assembler, data DataProvider, generator Generator, log zerolog.Logger) *Conversation {
	return &Conversation{
		history:   []models.Message{{Sender: models.SenderAssistant, Text: Greeting}},
		assembler: assembler,
		data:      data,
		generator: generator,
		log:       log,
	}
}

// Submit runs one full turn: append the user message, assemble context for
// the given filter selection, invoke the model, append the reply or the
// fixed fallback, and return a copy of the updated history. Blank input is
// a no-op returning ErrEmptyInput.
func (c *Conversation) Submit(ctx context.Context, userText string, sel models.FilterSelection) ([]models.Message, error) {
	userText = strings.TrimSpace(userText)
	if userText == "" {
		return nil, ErrEmptyInput
	}

	c.mu.Lock()
	if c.pending {
		c.mu.Unlock()
		return nil, ErrBusy
	}
	c.pending = true
	c.history = append(c.history, models.Message{Sender: models.SenderUser, Text: userText})
	c.mu.Unlock()

	reply := c.answer(ctx, userText, sel)

	c.mu.Lock()
	c.history = append(c.history, models.Message{Sender: models.SenderAssistant, Text: reply})
	c.pending = false
	snapshot := c.copyHistory()
	c.mu.Unlock()

	return snapshot, nil
}

// answer assembles the context, composes the prompt and invokes the model.
// Every failure on the way is logged and converted to the fallback reply;
// it never reaches the caller as an error.
func (c *Conversation) answer(ctx context.Context, question string, sel models.FilterSelection) string {
	var view []models.InventoryDay
	dataset, err := c.data.Dataset(ctx)
	if err != nil {
		c.log.Error().Err(err).Msg("loading dataset for context failed")
	} else {
		view = analytics.Apply(dataset, sel)
	}

	doc, err := c.assembler.Assemble(ctx, view)
	if err != nil {
		// The assembler still produced an explicit document; use it.
		c.log.Error().Err(err).Msg("context assembly degraded")
	}

	prompt := fmt.Sprintf("%s%s\n\nQuestion: %s\n\nProvide a concise, direct answer using the data provided. If the answer is not in the data, say so.",
		promptPreamble, doc, question)

	reply, err := c.generator.Generate(ctx, prompt)
	if err != nil {
		c.log.Error().Err(err).Msg("model invocation failed")
		return fallbackReply
	}
	return reply
}

// History returns a copy of the message history.
func (c *Conversation) History() []models.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.copyHistory()
}

func (c *Conversation) copyHistory() []models.Message {
	out := make([]models.Message, len(c.history))
	copy(out, c.history)
	return out
}
