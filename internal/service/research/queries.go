package research

import (
	"regexp"
	"strings"

	"github.com/fleetcore/helmsman/internal/core"
)

// MaxQueries caps one turn's research fan-out.
const MaxQueries = 4

var (
	superlativeVocab = regexp.MustCompile(`(?i)\b(biggest|largest|best|top|most|fastest|newest|oldest|greatest)\b`)
	equipmentVocab   = regexp.MustCompile(`(?i)\b(engine|engines|generator|generators|pump|pumps|crane|cranes|boiler|boilers|compressor|compressors|thruster|thrusters|purifier|separator|windlass)\b`)
	regulatoryVocab  = regexp.MustCompile(`(?i)\b(solas|marpol|ism|isps|mlc|imo|regulation|regulations|compliance|convention|annex)\b`)
	companyVocab     = regexp.MustCompile(`(?i)\b(company|shipping line|operator|owner|manufacturer|maker|shipyard)\b`)

	vesselName = regexp.MustCompile(`\b(?:MV|MS|SS)\s+([A-Z][A-Za-z-]+(?:\s+[A-Z][A-Za-z-]+)?)`)
)

// GenerateQueries expands one query into at most MaxQueries variants. The
// original query is always element 0; expansion rules apply additively and
// independently until the cap is hit.
func GenerateQueries(query string, preserveContext bool, knowledge *core.AccumulatedKnowledge) []string {
	queries := []string{query}

	add := func(variant string) {
		if len(queries) >= MaxQueries {
			return
		}
		for _, q := range queries {
			if strings.EqualFold(q, variant) {
				return
			}
		}
		queries = append(queries, variant)
	}

	hasPlatform := knowledge != nil && knowledge.HasPlatformKnowledge()

	if superlativeVocab.MatchString(query) {
		add(query + " comparison ranking")
	}

	if m := vesselName.FindStringSubmatch(query); m != nil {
		vessel := strings.TrimSpace(m[0])
		add(vessel + " vessel specifications")
		add(vessel + " owner operator")
		if hasPlatform && preserveContext {
			add(vessel + " maintenance management")
		}
	} else if name := mentionedEntity(query, knowledge); name != "" {
		add(name + " vessel specifications")
		add(name + " owner operator")
		if hasPlatform && preserveContext {
			add(name + " maintenance management")
		}
	}

	if companyVocab.MatchString(query) || mentionedCompany(query, knowledge) != "" {
		if name := mentionedCompany(query, knowledge); name != "" {
			add(name + " fleet vessels")
			add(name + " fleet specifications")
		} else {
			add(query + " fleet vessels")
		}
	}

	if equipmentVocab.MatchString(query) {
		add(query + " manufacturer manual specifications")
	}

	if regulatoryVocab.MatchString(query) {
		add(query + " classification society port state control requirements")
	}

	return queries
}

func mentionedEntity(query string, knowledge *core.AccumulatedKnowledge) string {
	if knowledge == nil {
		return ""
	}
	lower := strings.ToLower(query)
	for key, e := range knowledge.VesselEntities {
		if key != "" && strings.Contains(lower, key) {
			return e.Name
		}
	}
	return ""
}

func mentionedCompany(query string, knowledge *core.AccumulatedKnowledge) string {
	if knowledge == nil {
		return ""
	}
	lower := strings.ToLower(query)
	for key, e := range knowledge.CompanyEntities {
		if key != "" && strings.Contains(lower, key) {
			return e.Name
		}
	}
	return ""
}
