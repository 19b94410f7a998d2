package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"app/models"
)

func TestRenderMessagesProseOnly(t *testing.T) {
	rendered := RenderMessages([]models.Message{
		{Sender: models.SenderAssistant, Text: Greeting},
		{Sender: models.SenderUser, Text: "hello"},
	})

	require.Len(t, rendered, 2)
	for _, m := range rendered {
		require.Len(t, m.Segments, 1)
		assert.Equal(t, models.SegmentProse, m.Segments[0].Kind)
	}
	assert.Equal(t, Greeting, rendered[0].Segments[0].Text)
}

func TestRenderMessagesSplitsAssistantCode(t *testing.T) {
	text := "Here is the query:\n```sql\nSELECT 1;\n```\nRun it against the store."
	rendered := RenderMessages([]models.Message{{Sender: models.SenderAssistant, Text: text}})

	require.Len(t, rendered, 1)
	segments := rendered[0].Segments
	require.Len(t, segments, 3)
	assert.Equal(t, models.SegmentProse, segments[0].Kind)
	assert.Equal(t, "Here is the query:\n", segments[0].Text)
	assert.Equal(t, models.SegmentCode, segments[1].Kind)
	assert.Equal(t, "sql\nSELECT 1;\n", segments[1].Text)
	assert.Equal(t, models.SegmentProse, segments[2].Kind)
}

func TestRenderMessagesDropsBlankProseAroundFence(t *testing.T) {
	rendered := RenderMessages([]models.Message{
		{Sender: models.SenderAssistant, Text: "```\ncode only\n```"},
	})

	require.Len(t, rendered, 1)
	segments := rendered[0].Segments
	require.Len(t, segments, 1)
	assert.Equal(t, models.SegmentCode, segments[0].Kind)
	assert.Equal(t, "\ncode only\n", segments[0].Text)
}

func TestRenderMessagesUserFenceNotSplit(t *testing.T) {
	text := "what does ```SELECT``` mean?"
	rendered := RenderMessages([]models.Message{{Sender: models.SenderUser, Text: text}})

	require.Len(t, rendered, 1)
	require.Len(t, rendered[0].Segments, 1)
	assert.Equal(t, models.SegmentProse, rendered[0].Segments[0].Kind)
	assert.Equal(t, text, rendered[0].Segments[0].Text)
}

func TestRenderMessagesUnterminatedFence(t *testing.T) {
	rendered := RenderMessages([]models.Message{
		{Sender: models.SenderAssistant, Text: "try this:\n```\nSELECT 1;"},
	})

	segments := rendered[0].Segments
	require.Len(t, segments, 2)
	assert.Equal(t, models.SegmentProse, segments[0].Kind)
	assert.Equal(t, models.SegmentCode, segments[1].Kind)
	assert.Equal(t, "\nSELECT 1;", segments[1].Text)
}
