package tokens

import (
	"strings"
	"testing"
)

func TestCount(t *testing.T) {
	c := NewCounter()

	if got := c.Count(""); got != 0 {
		t.Errorf("empty text should count 0, got %d", got)
	}
	short := c.Count("vessel maintenance")
	long := c.Count("vessel maintenance schedule for the entire fleet this quarter")
	if short <= 0 || long <= short {
		t.Errorf("counts not monotonic: short=%d long=%d", short, long)
	}
}

func TestTruncate(t *testing.T) {
	c := NewCounter()

	t.Run("under budget is untouched", func(t *testing.T) {
		text := "line one\nline two"
		if got := c.Truncate(text, 1000); got != text {
			t.Errorf("expected text unchanged, got %q", got)
		}
	})

	t.Run("cuts on line boundaries", func(t *testing.T) {
		var lines []string
		for i := 0; i < 50; i++ {
			lines = append(lines, "a reasonably sized context line about vessels")
		}
		text := strings.Join(lines, "\n")

		got := c.Truncate(text, 40)
		if c.Count(got) > 40 {
			t.Errorf("truncated text still exceeds budget: %d tokens", c.Count(got))
		}
		for _, line := range strings.Split(got, "\n") {
			if line != lines[0] {
				t.Errorf("partial line leaked into output: %q", line)
			}
		}
	})

	t.Run("single oversized line is word-cut", func(t *testing.T) {
		text := strings.Repeat("word ", 500)
		got := c.Truncate(text, 20)
		if got == "" {
			t.Error("oversized single line should still yield content")
		}
		if len(strings.Fields(got)) > 20 {
			t.Errorf("word cut exceeded budget: %d words", len(strings.Fields(got)))
		}
	})
}
