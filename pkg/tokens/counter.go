package tokens

import (
	"strings"
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

const defaultEncoding = "cl100k_base"

// Counter measures prompt text against a token budget. The tiktoken
// encoding is loaded lazily; if it cannot be loaded (offline environment),
// the counter falls back to a whitespace-word estimate.
type Counter struct {
	once sync.Once
	enc  *tiktoken.Tiktoken
}

func NewCounter() *Counter {
	return &Counter{}
}

func (c *Counter) encoding() *tiktoken.Tiktoken {
	c.once.Do(func() {
		enc, err := tiktoken.GetEncoding(defaultEncoding)
		if err == nil {
			c.enc = enc
		}
	})
	return c.enc
}

func (c *Counter) Count(text string) int {
	if enc := c.encoding(); enc != nil {
		return len(enc.Encode(text, nil, nil))
	}
	// Rough fallback: one token per word is a safe overestimate for budget checks
	return len(strings.Fields(text))
}

// Truncate cuts text down so it fits the budget, on a line boundary where
// possible, so a context block never blows up the prompt.
func (c *Counter) Truncate(text string, budget int) string {
	if budget <= 0 || c.Count(text) <= budget {
		return text
	}

	lines := strings.Split(text, "\n")
	var b strings.Builder
	used := 0
	for _, line := range lines {
		n := c.Count(line) + 1
		if used+n > budget {
			break
		}
		b.WriteString(line)
		b.WriteByte('\n')
		used += n
	}

	out := strings.TrimRight(b.String(), "\n")
	if out == "" {
		// Single oversized line: hard cut by words
		words := strings.Fields(text)
		if len(words) > budget {
			words = words[:budget]
		}
		out = strings.Join(words, " ")
	}
	return out
}
