package conversation

type Speaker string

const (
	SpeakerUser      Speaker = "user"
	SpeakerAssistant Speaker = "assistant"
)

// Entry is one line of the chat transcript.
type Entry struct {
	Speaker Speaker `json:"speaker"`
	Text    string  `json:"text"`
}

// Transcript is the append-only record of the exchange. It is purely
// observational; no routing logic reads it back.
type Transcript struct {
	entries []Entry
}

func (t *Transcript) Append(speaker Speaker, text string) {
	t.entries = append(t.entries, Entry{Speaker: speaker, Text: text})
}

func (t *Transcript) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

func (t *Transcript) Len() int {
	return len(t.entries)
}
