package models

// Sender identifies who authored a chat message.
type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// Message is one turn in the conversation history.
type Message struct {
	Sender Sender `json:"sender"`
	Text   string `json:"text"`
}

// ChatRequest is the body of a chat submission.
type ChatRequest struct {
	Prompt string `json:"prompt"`
}

// SegmentKind distinguishes prose from fenced code in a rendered message.
type SegmentKind string

const (
	SegmentProse SegmentKind = "prose"
	SegmentCode  SegmentKind = "code"
)

// Segment is one styled unit of a rendered message.
type Segment struct {
	Kind SegmentKind `json:"kind"`
	Text string      `json:"text"`
}

// RenderedMessage is a message split into display segments. Assistant text
// containing fenced code is split on the fence delimiter; everything else is
// a single prose segment.
type RenderedMessage struct {
	Sender   Sender    `json:"sender"`
	Segments []Segment `json:"segments"`
}

// LoginRequest is the operator login body.
type LoginRequest struct {
	Password string `json:"password"`
}
