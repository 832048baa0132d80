package session

import (
	"strings"
	"time"

	"github.com/fleetcore/helmsman/internal/core"
)

// KnowledgeDelta is what one turn's extraction learned. Reducers fold it
// into the accumulated knowledge.
type KnowledgeDelta struct {
	Features    []core.FeatureKnowledge
	Vessels     []core.EntityRecord
	Companies   []core.EntityRecord
	Connections []core.Connection
	Topics      []string
}

func (d *KnowledgeDelta) Empty() bool {
	return len(d.Features) == 0 && len(d.Vessels) == 0 && len(d.Companies) == 0 &&
		len(d.Connections) == 0 && len(d.Topics) == 0
}

// Reducer merges one collection of a delta into accumulated knowledge.
// Each reducer declares its dedup key so the merge policy per collection
// is explicit and testable in isolation.
type Reducer struct {
	Name     string
	DedupKey string
	Apply    func(k *core.AccumulatedKnowledge, d *KnowledgeDelta) int
}

// Reducers is the full set, one per knowledge collection.
var Reducers = []Reducer{
	{
		Name:     "features",
		DedupKey: "name (case-insensitive)",
		Apply:    mergeFeatures,
	},
	{
		Name:     "vessels",
		DedupKey: "name (lower-cased map key)",
		Apply: func(k *core.AccumulatedKnowledge, d *KnowledgeDelta) int {
			if k.VesselEntities == nil {
				k.VesselEntities = make(map[string]*core.EntityRecord)
			}
			return upsertEntities(k.VesselEntities, d.Vessels)
		},
	},
	{
		Name:     "companies",
		DedupKey: "name (lower-cased map key)",
		Apply: func(k *core.AccumulatedKnowledge, d *KnowledgeDelta) int {
			if k.CompanyEntities == nil {
				k.CompanyEntities = make(map[string]*core.EntityRecord)
			}
			return upsertEntities(k.CompanyEntities, d.Companies)
		},
	},
	{
		Name:     "connections",
		DedupKey: "(from,to) pair",
		Apply:    mergeConnections,
	},
	{
		Name:     "topics",
		DedupKey: "exact keyword",
		Apply:    mergeTopics,
	},
}

// Merge runs every reducer against the delta and reports how many entries
// were newly added or updated.
func Merge(k *core.AccumulatedKnowledge, d *KnowledgeDelta) int {
	applied := 0
	for _, r := range Reducers {
		applied += r.Apply(k, d)
	}
	return applied
}

func mergeFeatures(k *core.AccumulatedKnowledge, d *KnowledgeDelta) int {
	added := 0
	for _, f := range d.Features {
		key := strings.ToLower(f.Name)
		dup := false
		for _, existing := range k.FleetcoreFeatures {
			if strings.ToLower(existing.Name) == key {
				dup = true
				break
			}
		}
		if dup {
			continue
		}
		if f.Timestamp.IsZero() {
			f.Timestamp = time.Now().UTC()
		}
		k.FleetcoreFeatures = append(k.FleetcoreFeatures, f)
		added++
	}
	return added
}

// upsertEntities merges fields into existing records instead of replacing
// them, so a later sighting never loses earlier identifiers or attributes.
func upsertEntities(entities map[string]*core.EntityRecord, incoming []core.EntityRecord) int {
	touched := 0
	for _, e := range incoming {
		key := strings.ToLower(strings.TrimSpace(e.Name))
		if key == "" {
			continue
		}

		existing, ok := entities[key]
		if !ok {
			rec := e
			if rec.FirstMentioned.IsZero() {
				rec.FirstMentioned = time.Now().UTC()
			}
			entities[key] = &rec
			touched++
			continue
		}

		changed := false
		for id, v := range e.Identifiers {
			if existing.Identifiers == nil {
				existing.Identifiers = make(map[string]string)
			}
			if _, has := existing.Identifiers[id]; !has {
				existing.Identifiers[id] = v
				changed = true
			}
		}
		for attr, v := range e.Attributes {
			if existing.Attributes == nil {
				existing.Attributes = make(map[string]string)
			}
			if _, has := existing.Attributes[attr]; !has {
				existing.Attributes[attr] = v
				changed = true
			}
		}
		if e.Discussed && !existing.Discussed {
			existing.Discussed = true
			changed = true
		}
		if changed {
			touched++
		}
	}
	return touched
}

func mergeConnections(k *core.AccumulatedKnowledge, d *KnowledgeDelta) int {
	added := 0
	for _, c := range d.Connections {
		dup := false
		for _, existing := range k.Connections {
			if existing.From == c.From && existing.To == c.To {
				dup = true
				break
			}
		}
		if dup {
			continue
		}
		k.Connections = append(k.Connections, c)
		added++
	}
	return added
}

func mergeTopics(k *core.AccumulatedKnowledge, d *KnowledgeDelta) int {
	added := 0
	for _, t := range d.Topics {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		dup := false
		for _, existing := range k.DiscussedTopics {
			if existing == t {
				dup = true
				break
			}
		}
		if dup {
			continue
		}
		k.DiscussedTopics = append(k.DiscussedTopics, t)
		added++
	}
	return added
}
