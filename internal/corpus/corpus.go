package corpus

import (
	"encoding/json"
	"fmt"
	"os"
)

// Corpus is the static document set every model call is scoped to. It is
// loaded once at process start and shared read-only; nothing mutates it
// after Load returns.
type Corpus struct {
	docs json.RawMessage
}

// Load reads and compacts the JSON document set at path.
func Load(path string) (*Corpus, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("corpus: read %s: %w", path, err)
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("corpus: parse %s: %w", path, err)
	}
	compact, err := json.Marshal(parsed)
	if err != nil {
		return nil, fmt.Errorf("corpus: compact %s: %w", path, err)
	}

	return &Corpus{docs: compact}, nil
}

// Docs returns the compacted document JSON.
func (c *Corpus) Docs() string { return string(c.docs) }

// SystemInstruction renders the fixed instruction sent with every model
// call. The fallback phrase is part of the product contract; the model is
// told to reproduce it verbatim when the docs don't contain the answer.
func (c *Corpus) SystemInstruction() string {
	return fmt.Sprintf(`Answer ONLY using these docs: %s. If not found, say EXACTLY: "Sorry, I don’t have information about that."`, c.docs)
}
