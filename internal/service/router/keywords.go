package router

import (
	"regexp"
	"strings"
)

// Curated platform vocabulary. Single-word terms match on word boundaries;
// multi-word phrases match as substrings. The asymmetry is intentional:
// phrase keywords are meant to be looser.
var platformKeywords = []string{
	"fleetcore",
	"pms",
	"planned maintenance system",
	"maintenance planning",
	"work order",
	"work orders",
	"spare parts",
	"spare part inventory",
	"running hours",
	"condition monitoring",
	"dry dock planning",
	"defect reporting",
	"crew tasks",
	"survey planning",
	"class survey",
	"dashboard",
	"module",
	"integration",
}

// Regulatory and industry topics the built-in knowledge base answers
// directly. Routed like platform vocabulary: the lookup is internal, no
// external call.
var knowledgeTopics = []string{
	"solas",
	"marpol",
	"psc",
	"ism code",
	"port state control",
	"classification society",
	"classification societies",
	"dry docking",
	"drydocking",
	"safety management system",
}

var wordBoundaryCache = map[string]*regexp.Regexp{}

func init() {
	for _, kw := range platformKeywords {
		if !strings.Contains(kw, " ") {
			wordBoundaryCache[kw] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(kw) + `\b`)
		}
	}
	for _, kw := range knowledgeTopics {
		if !strings.Contains(kw, " ") {
			wordBoundaryCache[kw] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(kw) + `\b`)
		}
	}
}

func matchesVocabulary(query string, vocab []string) bool {
	lower := strings.ToLower(query)
	for _, kw := range vocab {
		if re, ok := wordBoundaryCache[kw]; ok {
			if re.MatchString(query) {
				return true
			}
			continue
		}
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// MatchesPlatformKeywords reports whether the query references the
// platform vocabulary.
func MatchesPlatformKeywords(query string) bool {
	return matchesVocabulary(query, platformKeywords)
}

// MatchesKnowledgeTopics reports whether the query references a
// regulatory or industry topic the knowledge base covers.
func MatchesKnowledgeTopics(query string) bool {
	return matchesVocabulary(query, knowledgeTopics)
}

// vesselMention catches explicit vessel references even before the entity
// is in memory.
var vesselMention = regexp.MustCompile(`(?i)\b(m[vs]|ss)\s+[A-Z][\w-]+|\bIMO\s*\d{7}\b`)
