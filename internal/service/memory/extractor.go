package memory

import (
	"regexp"
	"strings"
	"time"

	"github.com/fleetcore/helmsman/internal/core"
	"github.com/fleetcore/helmsman/internal/session"
)

// Extraction runs against the raw query text with fixed keyword and regex
// patterns, never against the generated answer: the user's own words are
// the authoritative signal for what the conversation is about.

var (
	vesselPattern  = regexp.MustCompile(`\b(MV|MS|SS)\s+([A-Z][A-Za-z-]+(?:\s+[A-Z][A-Za-z-]+)?)`)
	imoPattern     = regexp.MustCompile(`(?i)\bIMO\s*(\d{7})\b`)
	companyPattern = regexp.MustCompile(`\b([A-Z][A-Za-z]+(?:\s+[A-Z][A-Za-z]+)*)\s+(Shipping|Maritime|Lines|Tankers|Carriers|Marine|Navigation|Group)\b`)
)

// featureCatalog maps platform feature keywords to their explanations.
// Matching is substring-based on the lower-cased query.
var featureCatalog = map[string]string{
	"planned maintenance":  "Schedules recurring maintenance jobs from running hours and calendar intervals.",
	"work order":           "Tracks maintenance jobs from creation through completion with full history.",
	"spare parts":          "Keeps spare part stock levels linked to equipment and reorder points.",
	"condition monitoring": "Watches live equipment readings and raises alerts on deviation.",
	"dry dock planning":    "Plans dry dock scope, budget, and yard specification in one place.",
	"defect reporting":     "Captures defects on board and routes them into the maintenance plan.",
	"survey planning":      "Tracks class and statutory survey windows against due dates.",
	"crew tasks":           "Assigns and verifies shipboard tasks with sign-off by rank.",
	"dashboard":            "Aggregates fleet maintenance status into one overview.",
}

var topicKeywords = []string{
	"maintenance", "compliance", "inspection", "chartering", "bunkering",
	"manning", "drydocking", "safety", "certification", "surveys",
	"spare parts", "repairs", "classification", "insurance", "vetting",
}

// trimVesselName drops a trailing "IMO" token the greedy name capture
// swallows when the number directly follows the vessel name.
func trimVesselName(raw string) string {
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(raw), " IMO"))
}

// Extract derives a knowledge delta from one user query.
func Extract(query string, turnIndex int) *session.KnowledgeDelta {
	delta := &session.KnowledgeDelta{}
	now := time.Now().UTC()
	lower := strings.ToLower(query)

	vesselMatches := vesselPattern.FindAllStringIndex(query, -1)
	imoMatches := imoPattern.FindAllStringSubmatchIndex(query, -1)

	var vesselNames []string
	for i, m := range vesselMatches {
		name := trimVesselName(query[m[0]:m[1]])
		vesselNames = append(vesselNames, name)
		rec := core.EntityRecord{
			Name:           name,
			Discussed:      true,
			FirstMentioned: now,
		}
		// An IMO number identifies the vessel mentioned before it, up to
		// the next vessel mention.
		limit := len(query)
		if i+1 < len(vesselMatches) {
			limit = vesselMatches[i+1][0]
		}
		for _, im := range imoMatches {
			if im[0] >= m[0] && im[0] < limit {
				rec.Identifiers = map[string]string{"imo": query[im[2]:im[3]]}
				break
			}
		}
		delta.Vessels = append(delta.Vessels, rec)
	}

	var companyNames []string
	for _, m := range companyPattern.FindAllStringSubmatch(query, -1) {
		name := strings.TrimSpace(m[0])
		companyNames = append(companyNames, name)
		delta.Companies = append(delta.Companies, core.EntityRecord{
			Name:           name,
			Discussed:      true,
			FirstMentioned: now,
		})
	}

	for keyword, explanation := range featureCatalog {
		if strings.Contains(lower, keyword) {
			delta.Features = append(delta.Features, core.FeatureKnowledge{
				Name:        keyword,
				Explanation: explanation,
				TurnIndex:   turnIndex,
				Timestamp:   now,
			})
		}
	}

	for _, topic := range topicKeywords {
		if strings.Contains(lower, topic) {
			delta.Topics = append(delta.Topics, topic)
		}
	}

	// Co-mention of a vessel and a company implies an operating relationship
	for _, vessel := range vesselNames {
		for _, company := range companyNames {
			delta.Connections = append(delta.Connections, core.Connection{
				From:         vessel,
				To:           company,
				Relationship: "operated by",
				TurnIndex:    turnIndex,
			})
		}
	}

	return delta
}
