package intelligence

import (
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/fleetcore/helmsman/internal/core"
)

// Metric weights per tier. Tier 1 totals 0.2, tiers 1-3 total 0.75 and the
// full table totals 1.0; the depth levels normalize by those constants so a
// fast score stays comparable in range to a deep one.
const (
	weightDomainAuthority   = 0.08
	weightContentFreshness  = 0.06
	weightStructuralQuality = 0.06

	weightKeywordRelevance = 0.12
	weightTitleRelevance   = 0.06
	weightTechnicalDepth   = 0.07
	weightCompleteness     = 0.05

	weightAuthoritySignals    = 0.10
	weightCitationQuality     = 0.08
	weightExpertiseIndicators = 0.07

	weightDomainSpecificity = 0.13
	weightTechnicalAccuracy = 0.12

	tier1WeightTotal    = weightDomainAuthority + weightContentFreshness + weightStructuralQuality
	tier123WeightTotal  = tier1WeightTotal + weightKeywordRelevance + weightTitleRelevance + weightTechnicalDepth + weightCompleteness + weightAuthoritySignals + weightCitationQuality + weightExpertiseIndicators
	allTiersWeightTotal = tier123WeightTotal + weightDomainSpecificity + weightTechnicalAccuracy
)

// domainTiers is the curated authority table. Class societies, the IMO and
// flag registries outrank trade press, which outranks forums.
var domainTiers = map[string]float64{
	"imo.org":                0.95,
	"iacs.org.uk":            0.95,
	"dnv.com":                0.95,
	"lr.org":                 0.95,
	"eagle.org":              0.95,
	"classnk.or.jp":          0.95,
	"bureauveritas.com":      0.95,
	"equasis.org":            0.9,
	"emsa.europa.eu":         0.9,
	"uscg.mil":               0.9,
	"marinetraffic.com":      0.7,
	"vesselfinder.com":       0.7,
	"tradewindsnews.com":     0.75,
	"lloydslist.com":         0.75,
	"maritime-executive.com": 0.75,
	"gcaptain.com":           0.7,
	"safety4sea.com":         0.7,
	"marinelink.com":         0.7,
	"wikipedia.org":          0.65,
	"reddit.com":             0.35,
}

const defaultDomainScore = 0.5

// maritimeThesaurus maps query terms to domain synonyms so relevance
// scoring survives vocabulary drift between query and source.
var maritimeThesaurus = map[string][]string{
	"vessel":      {"ship", "boat", "craft", "tonnage"},
	"ship":        {"vessel", "boat", "craft"},
	"maintenance": {"upkeep", "repair", "overhaul", "servicing", "pms"},
	"engine":      {"machinery", "propulsion", "main engine", "diesel"},
	"owner":       {"operator", "management", "shipowner"},
	"company":     {"operator", "firm", "line", "shipping company"},
	"cargo":       {"freight", "tonnage", "payload"},
	"regulation":  {"convention", "compliance", "requirement", "solas", "marpol"},
	"survey":      {"inspection", "audit", "class survey"},
	"fleet":       {"vessels", "ships", "tonnage"},
	"fuel":        {"bunker", "bunkers", "hfo", "mgo"},
	"crew":        {"seafarer", "seafarers", "manning", "complement"},
}

// maritimeJargon signals genuine domain expertise when it shows up in prose.
var maritimeJargon = []string{
	"classification society", "drydock", "dry dock", "ballast", "scantling",
	"port state control", "flag state", "deadweight", "gross tonnage",
	"planned maintenance", "condition monitoring", "bunker", "charterer",
	"ism code", "solas", "marpol", "annex", "keel", "hull", "seaworthiness",
	"auxiliary engine", "sea trial", "delivery voyage", "bareboat",
}

var (
	technicalUnits   = regexp.MustCompile(`(?i)\b\d[\d,.]*\s*(kw|mw|hp|rpm|dwt|teu|gt|bar|knots?|tonnes?|mt|mm|m3|nm)\b`)
	citationMarkers  = regexp.MustCompile(`(?i)(according to|source:|sources:|\[\d+\]|reported by|cited|references)`)
	numberPattern    = regexp.MustCompile(`\d[\d,.]*`)
	sentenceBoundary = regexp.MustCompile(`[.!?]\s`)
	imoNumber        = regexp.MustCompile(`(?i)\bIMO\s*\d{7}\b`)
	speedClaim       = regexp.MustCompile(`(?i)(\d{1,3})\s*knots?`)
	powerClaim       = regexp.MustCompile(`(?i)(\d[\d,]{0,7})\s*(?:kw|kilowatts?)`)
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// --- Tier 1: surface ---

func scoreDomainAuthority(rawURL string) float64 {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return defaultDomainScore
	}
	host := strings.TrimPrefix(strings.ToLower(u.Host), "www.")
	for domain, score := range domainTiers {
		if host == domain || strings.HasSuffix(host, "."+domain) {
			return score
		}
	}
	if strings.HasSuffix(host, ".gov") || strings.HasSuffix(host, ".int") {
		return 0.9
	}
	if strings.Contains(host, "forum") || strings.Contains(host, "blog") {
		return 0.35
	}
	return defaultDomainScore
}

func scoreFreshness(publishedDate string, now time.Time) float64 {
	if publishedDate == "" {
		return 0.5
	}
	var published time.Time
	var err error
	for _, layout := range []string{time.RFC3339, "2006-01-02", "2006-01-02 15:04:05", "January 2, 2006"} {
		published, err = time.Parse(layout, publishedDate)
		if err == nil {
			break
		}
	}
	if err != nil {
		return 0.5
	}

	age := now.Sub(published)
	switch {
	case age < 0:
		return 0.5
	case age < 90*24*time.Hour:
		return 1.0
	case age < 365*24*time.Hour:
		return 0.8
	case age < 3*365*24*time.Hour:
		return 0.6
	case age < 5*365*24*time.Hour:
		return 0.4
	default:
		return 0.25
	}
}

func scoreStructuralQuality(content string) float64 {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return 0
	}

	score := 0.2
	if len(trimmed) > 200 {
		score += 0.2
	}
	if len(trimmed) > 800 {
		score += 0.2
	}
	if sentenceBoundary.MatchString(trimmed) {
		score += 0.2
	}
	if strings.Contains(trimmed, "\n") {
		score += 0.1
	}
	if trimmed != strings.ToUpper(trimmed) {
		score += 0.1
	}
	return clamp01(score)
}

// --- Tier 2: semantic ---

// expandTerms widens query terms with their maritime synonyms.
func expandTerms(query string) [][]string {
	var groups [][]string
	for _, term := range strings.Fields(strings.ToLower(query)) {
		term = strings.Trim(term, `.,!?"'`)
		if len(term) < 3 {
			continue
		}
		group := []string{term}
		if syns, ok := maritimeThesaurus[term]; ok {
			group = append(group, syns...)
		}
		groups = append(groups, group)
	}
	return groups
}

func matchFraction(text string, groups [][]string) float64 {
	if len(groups) == 0 {
		return 0
	}
	lower := strings.ToLower(text)
	matched := 0
	for _, group := range groups {
		for _, term := range group {
			if strings.Contains(lower, term) {
				matched++
				break
			}
		}
	}
	return float64(matched) / float64(len(groups))
}

func scoreKeywordRelevance(content, query string) float64 {
	return clamp01(matchFraction(content, expandTerms(query)))
}

func scoreTitleRelevance(title, query string) float64 {
	return clamp01(matchFraction(title, expandTerms(query)))
}

func scoreTechnicalDepth(content string) float64 {
	units := len(technicalUnits.FindAllString(content, -1))
	numbers := len(numberPattern.FindAllString(content, -1))

	score := 0.0
	switch {
	case units >= 5:
		score += 0.5
	case units >= 2:
		score += 0.35
	case units >= 1:
		score += 0.2
	}
	switch {
	case numbers >= 10:
		score += 0.3
	case numbers >= 3:
		score += 0.2
	case numbers >= 1:
		score += 0.1
	}
	if imoNumber.MatchString(content) {
		score += 0.2
	}
	return clamp01(score)
}

func scoreCompleteness(content, query string) float64 {
	score := matchFraction(content, expandTerms(query)) * 0.5
	if len(content) > 500 {
		score += 0.25
	}
	if len(content) > 1500 {
		score += 0.15
	}
	if sentenceBoundary.MatchString(content) {
		score += 0.1
	}
	return clamp01(score)
}

// --- Tier 3: authority ---

func scoreAuthoritySignals(src core.ContentSource) float64 {
	score := scoreDomainAuthority(src.URL) * 0.6
	lower := strings.ToLower(src.Content)
	for _, marker := range []string{"official", "registry", "accredited", "certified", "classification society", "flag state"} {
		if strings.Contains(lower, marker) {
			score += 0.1
		}
	}
	return clamp01(score)
}

func scoreCitationQuality(content string) float64 {
	markers := len(citationMarkers.FindAllString(content, -1))
	links := strings.Count(strings.ToLower(content), "http")
	score := 0.3
	switch {
	case markers >= 3:
		score += 0.4
	case markers >= 1:
		score += 0.25
	}
	if links >= 1 {
		score += 0.2
	}
	return clamp01(score)
}

func scoreExpertiseIndicators(content string) float64 {
	lower := strings.ToLower(content)
	hits := 0
	for _, term := range maritimeJargon {
		if strings.Contains(lower, term) {
			hits++
		}
	}
	switch {
	case hits >= 6:
		return 1.0
	case hits >= 4:
		return 0.8
	case hits >= 2:
		return 0.6
	case hits >= 1:
		return 0.4
	default:
		return 0.2
	}
}

// --- Tier 4: domain specificity ---

func scoreDomainSpecificity(src core.ContentSource) float64 {
	lower := strings.ToLower(src.Title + " " + src.Content)
	hits := 0
	for term := range maritimeThesaurus {
		if strings.Contains(lower, term) {
			hits++
		}
	}
	for _, term := range maritimeJargon {
		if strings.Contains(lower, term) {
			hits++
		}
	}
	return clamp01(float64(hits) / 8.0)
}

// scoreTechnicalAccuracy runs plausibility checks against physically
// sensible figures and known industry standards. It cannot prove accuracy,
// only flag claims outside plausible ranges.
func scoreTechnicalAccuracy(content string) float64 {
	score := 0.6
	lower := strings.ToLower(content)

	for _, m := range speedClaim.FindAllStringSubmatch(content, -1) {
		if v := atoiSafe(m[1]); v > 60 {
			// No commercial vessel does 60+ knots
			score -= 0.3
		}
	}
	for _, m := range powerClaim.FindAllStringSubmatch(content, -1) {
		if v := atoiSafe(strings.ReplaceAll(m[1], ",", "")); v > 120000 {
			score -= 0.2
		}
	}

	// Standards alignment: naming real conventions and their structure
	// the right way is a strong plausibility signal
	for _, std := range []string{"solas", "marpol annex", "ism code", "isps code", "mlc 2006"} {
		if strings.Contains(lower, std) {
			score += 0.15
		}
	}
	if imoNumber.MatchString(content) {
		score += 0.1
	}
	return clamp01(score)
}

func atoiSafe(s string) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return n
		}
		n = n*10 + int(r-'0')
	}
	return n
}
