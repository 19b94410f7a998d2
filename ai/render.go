package ai

import (
	"strings"

	"app/models"
)

const codeFence = "```"

// RenderMessages turns the history into display segments. Assistant text
// containing a fenced code delimiter is split into alternating prose/code
// segments; blank prose fragments around a fence are dropped. Everything
// else renders as a single prose segment.
func RenderMessages(history []models.Message) []models.RenderedMessage {
	rendered := make([]models.RenderedMessage, 0, len(history))
	for _, msg := range history {
		rendered = append(rendered, models.RenderedMessage{
			Sender:   msg.Sender,
			Segments: splitSegments(msg),
		})
	}
	return rendered
}

func splitSegments(msg models.Message) []models.Segment {
	if msg.Sender != models.SenderAssistant || !strings.Contains(msg.Text, codeFence) {
		return []models.Segment{{Kind: models.SegmentProse, Text: msg.Text}}
	}

	parts := strings.Split(msg.Text, codeFence)
	var segments []models.Segment
	for i, part := range parts {
		if i%2 == 0 {
			if strings.TrimSpace(part) == "" {
				continue
			}
			segments = append(segments, models.Segment{Kind: models.SegmentProse, Text: part})
		} else {
			segments = append(segments, models.Segment{Kind: models.SegmentCode, Text: part})
		}
	}
	return segments
}
