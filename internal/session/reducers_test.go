package session

import (
	"testing"

	"github.com/fleetcore/helmsman/internal/core"
)

func TestMergeIsIdempotent(t *testing.T) {
	delta := &KnowledgeDelta{
		Features:    []core.FeatureKnowledge{{Name: "Work Orders", Explanation: "job tracking"}},
		Vessels:     []core.EntityRecord{{Name: "MV Aurora"}},
		Companies:   []core.EntityRecord{{Name: "Nordic Shipping"}},
		Connections: []core.Connection{{From: "MV Aurora", To: "Nordic Shipping", Relationship: "operated by"}},
		Topics:      []string{"maintenance"},
	}

	k := &core.AccumulatedKnowledge{}
	if applied := Merge(k, delta); applied != 5 {
		t.Fatalf("first merge applied %d, expected 5", applied)
	}
	if applied := Merge(k, delta); applied != 0 {
		t.Fatalf("second merge applied %d, expected 0", applied)
	}

	if len(k.FleetcoreFeatures) != 1 || len(k.VesselEntities) != 1 ||
		len(k.CompanyEntities) != 1 || len(k.Connections) != 1 || len(k.DiscussedTopics) != 1 {
		t.Errorf("unexpected knowledge shape after double merge: %+v", k)
	}
}

func TestMergeFeaturesCaseInsensitive(t *testing.T) {
	k := &core.AccumulatedKnowledge{}
	Merge(k, &KnowledgeDelta{Features: []core.FeatureKnowledge{{Name: "Spare Parts"}}})
	Merge(k, &KnowledgeDelta{Features: []core.FeatureKnowledge{{Name: "SPARE PARTS"}}})

	if len(k.FleetcoreFeatures) != 1 {
		t.Errorf("expected case-insensitive dedup, got %d features", len(k.FleetcoreFeatures))
	}
}

func TestUpsertEntitiesMergesFields(t *testing.T) {
	k := &core.AccumulatedKnowledge{VesselEntities: map[string]*core.EntityRecord{}}

	Merge(k, &KnowledgeDelta{Vessels: []core.EntityRecord{{
		Name:        "MV Aurora",
		Identifiers: map[string]string{"imo": "9321483"},
	}}})
	Merge(k, &KnowledgeDelta{Vessels: []core.EntityRecord{{
		Name:       "mv aurora",
		Attributes: map[string]string{"type": "bulk carrier"},
		Discussed:  true,
	}}})

	if len(k.VesselEntities) != 1 {
		t.Fatalf("expected a single vessel record, got %d", len(k.VesselEntities))
	}
	rec := k.VesselEntities["mv aurora"]
	if rec.Identifiers["imo"] != "9321483" {
		t.Errorf("second sighting lost earlier identifier: %+v", rec)
	}
	if rec.Attributes["type"] != "bulk carrier" {
		t.Errorf("second sighting did not add attribute: %+v", rec)
	}
	if !rec.Discussed {
		t.Errorf("discussed flag should stick once set")
	}
}

func TestUpsertEntitiesNeverOverwrites(t *testing.T) {
	k := &core.AccumulatedKnowledge{VesselEntities: map[string]*core.EntityRecord{}}

	Merge(k, &KnowledgeDelta{Vessels: []core.EntityRecord{{
		Name:        "MV Aurora",
		Identifiers: map[string]string{"imo": "9321483"},
	}}})
	applied := Merge(k, &KnowledgeDelta{Vessels: []core.EntityRecord{{
		Name:        "MV Aurora",
		Identifiers: map[string]string{"imo": "0000000"},
	}}})

	if applied != 0 {
		t.Errorf("conflicting identifier should not count as applied, got %d", applied)
	}
	if got := k.VesselEntities["mv aurora"].Identifiers["imo"]; got != "9321483" {
		t.Errorf("first-seen identifier was overwritten: %q", got)
	}
}

func TestMergeConnectionsDedupByPair(t *testing.T) {
	k := &core.AccumulatedKnowledge{}
	Merge(k, &KnowledgeDelta{Connections: []core.Connection{
		{From: "MV Aurora", To: "Nordic Shipping", Relationship: "operated by"},
	}})
	Merge(k, &KnowledgeDelta{Connections: []core.Connection{
		{From: "MV Aurora", To: "Nordic Shipping", Relationship: "chartered by"},
		{From: "MV Zephyr", To: "Nordic Shipping", Relationship: "operated by"},
	}})

	if len(k.Connections) != 2 {
		t.Fatalf("expected 2 connections, got %d", len(k.Connections))
	}
	if k.Connections[0].Relationship != "operated by" {
		t.Errorf("duplicate pair should keep the first relationship, got %q", k.Connections[0].Relationship)
	}
}

func TestDeltaEmpty(t *testing.T) {
	d := &KnowledgeDelta{}
	if !d.Empty() {
		t.Error("zero delta should be empty")
	}
	d.Topics = []string{"solas"}
	if d.Empty() {
		t.Error("delta with a topic should not be empty")
	}
}
