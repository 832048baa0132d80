package conversation

import "regexp"

// Vocabulary patterns shared by the state and intent cascades. These are
// deliberately heuristic keyword lists, not a learned classifier; each one
// is exercised by a named rule so its reach stays testable.
var (
	comparisonVocab = regexp.MustCompile(`(?i)\b(compare|comparison|versus|vs\.?|difference|differences|better|which one)\b`)

	troubleshootingVocab = regexp.MustCompile(`(?i)\b(issue|issues|problem|problems|fix|error|errors|trouble|broken|failing|fails|not working|malfunction)\b`)

	platformVocab = regexp.MustCompile(`(?i)\b(fleetcore|platform|feature|features|module|modules|dashboard|pms|planned maintenance|work order|work orders|spare parts|inventory)\b`)

	actionVocab = regexp.MustCompile(`(?i)\b(how (do|can|to)|set up|setup|configure|integrate|implement|onboard|migrate|install)\b`)

	platformExplorationVocab = regexp.MustCompile(`(?i)(what (is|does) fleetcore|tell me about (the )?(platform|fleetcore)|platform (features|capabilities|overview)|how does (the )?(platform|fleetcore))`)

	entityVocab = regexp.MustCompile(`(?i)\b(vessel|vessels|ship|ships|boat|fleet|fleets|company|companies|operator|operators|owner|shipyard|mv|ms|ss|imo)\b`)

	evaluationVocab = regexp.MustCompile(`(?i)(should (i|we) use|is fleetcore (good|suitable|right|a good fit)|worth (using|adopting)|evaluate|suitable for|fit for|good fit)`)

	questionVocab = regexp.MustCompile(`(?i)\b(what|who|where|when|how many|how much|which|specs|specifications|details)\b`)
)
