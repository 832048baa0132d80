package knowledge

import (
	_ "embed"
	"strings"

	"github.com/gomarkdown/markdown/ast"
	"github.com/gomarkdown/markdown/parser"
)

//go:embed kb.md
var knowledgeBase []byte

// Base is the internal static knowledge lookup: curated maritime and
// platform prose, parsed once from the embedded markdown into sections
// keyed by heading.
type Base struct {
	sections []section
}

type section struct {
	title string
	body  string
}

func NewBase() *Base {
	return &Base{sections: parseSections(knowledgeBase)}
}

// Lookup returns the prose for a topic, ok=false as the empty-result
// sentinel when nothing matches.
func (b *Base) Lookup(topic string) (string, bool) {
	topic = strings.ToLower(strings.TrimSpace(topic))
	if topic == "" {
		return "", false
	}

	// Exact heading match first
	for _, s := range b.sections {
		if strings.ToLower(s.title) == topic {
			return s.body, true
		}
	}

	// Heading containment either way
	for _, s := range b.sections {
		title := strings.ToLower(s.title)
		if strings.Contains(topic, title) || strings.Contains(title, topic) {
			return s.body, true
		}
	}

	// Last resort: every topic word appears in the section body
	words := strings.Fields(topic)
	for _, s := range b.sections {
		body := strings.ToLower(s.body)
		all := true
		for _, w := range words {
			if !strings.Contains(body, w) {
				all = false
				break
			}
		}
		if all && len(words) > 0 {
			return s.body, true
		}
	}

	return "", false
}

// Topics lists all section headings.
func (b *Base) Topics() []string {
	topics := make([]string, 0, len(b.sections))
	for _, s := range b.sections {
		topics = append(topics, s.title)
	}
	return topics
}

func parseSections(src []byte) []section {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	doc := p.Parse(src)

	var sections []section
	var current *section

	for _, node := range doc.GetChildren() {
		if heading, ok := node.(*ast.Heading); ok {
			if current != nil {
				current.body = strings.TrimSpace(current.body)
				sections = append(sections, *current)
			}
			current = &section{title: nodeText(heading)}
			continue
		}
		if current != nil {
			if text := nodeText(node); text != "" {
				current.body += text + "\n\n"
			}
		}
	}
	if current != nil {
		current.body = strings.TrimSpace(current.body)
		sections = append(sections, *current)
	}
	return sections
}

func nodeText(node ast.Node) string {
	var b strings.Builder
	ast.WalkFunc(node, func(n ast.Node, entering bool) ast.WalkStatus {
		if !entering {
			return ast.GoToNext
		}
		switch t := n.(type) {
		case *ast.Text:
			b.Write(t.Literal)
		case *ast.Code:
			b.Write(t.Literal)
		}
		return ast.GoToNext
	})
	return strings.TrimSpace(b.String())
}
