package memory

import (
	"testing"
)

func TestExtractVessels(t *testing.T) {
	delta := Extract("Tell me about MV Aurora and MS Baltic Star", 1)

	if len(delta.Vessels) != 2 {
		t.Fatalf("expected 2 vessels, got %+v", delta.Vessels)
	}
	if delta.Vessels[0].Name != "MV Aurora" || delta.Vessels[1].Name != "MS Baltic Star" {
		t.Errorf("unexpected vessel names: %+v", delta.Vessels)
	}
	for _, v := range delta.Vessels {
		if !v.Discussed || v.FirstMentioned.IsZero() {
			t.Errorf("vessel record incomplete: %+v", v)
		}
	}
}

func TestExtractVesselWithIMO(t *testing.T) {
	delta := Extract("MV Aurora, IMO 9321483, needs a survey", 2)

	if len(delta.Vessels) != 1 {
		t.Fatalf("expected 1 vessel, got %+v", delta.Vessels)
	}
	if got := delta.Vessels[0].Identifiers["imo"]; got != "9321483" {
		t.Errorf("expected IMO identifier, got %q", got)
	}
}

func TestExtractTwoVesselsKeepOwnIMOs(t *testing.T) {
	delta := Extract("Compare MV Atlantic IMO 1111111 and MV Pacific IMO 2222222", 0)

	if len(delta.Vessels) != 2 {
		t.Fatalf("expected 2 vessels, got %+v", delta.Vessels)
	}
	if delta.Vessels[0].Name != "MV Atlantic" || delta.Vessels[1].Name != "MV Pacific" {
		t.Errorf("names must not swallow the IMO token: %+v", delta.Vessels)
	}
	if got := delta.Vessels[0].Identifiers["imo"]; got != "1111111" {
		t.Errorf("first vessel IMO = %q, expected 1111111", got)
	}
	if got := delta.Vessels[1].Identifiers["imo"]; got != "2222222" {
		t.Errorf("second vessel IMO = %q, expected 2222222", got)
	}
}

func TestExtractIMOStaysWithItsVessel(t *testing.T) {
	delta := Extract("MV Atlantic and MV Pacific IMO 2222222 need class surveys", 0)

	if len(delta.Vessels) != 2 {
		t.Fatalf("expected 2 vessels, got %+v", delta.Vessels)
	}
	if len(delta.Vessels[0].Identifiers) != 0 {
		t.Errorf("first vessel must not inherit a later IMO: %+v", delta.Vessels[0])
	}
	if got := delta.Vessels[1].Identifiers["imo"]; got != "2222222" {
		t.Errorf("second vessel IMO = %q, expected 2222222", got)
	}
}

func TestExtractCompanies(t *testing.T) {
	delta := Extract("Nordic Shipping just bought two bulkers", 1)

	if len(delta.Companies) != 1 || delta.Companies[0].Name != "Nordic Shipping" {
		t.Fatalf("expected Nordic Shipping, got %+v", delta.Companies)
	}
}

func TestExtractConnectionsFromCoMention(t *testing.T) {
	delta := Extract("MV Aurora is run by Nordic Shipping", 3)

	if len(delta.Connections) != 1 {
		t.Fatalf("expected 1 connection, got %+v", delta.Connections)
	}
	c := delta.Connections[0]
	if c.From != "MV Aurora" || c.To != "Nordic Shipping" || c.Relationship != "operated by" {
		t.Errorf("unexpected connection: %+v", c)
	}
	if c.TurnIndex != 3 {
		t.Errorf("expected turn index 3, got %d", c.TurnIndex)
	}
}

func TestExtractFeaturesAndTopics(t *testing.T) {
	delta := Extract("does the planned maintenance module handle spare parts too?", 1)

	featureNames := map[string]bool{}
	for _, f := range delta.Features {
		featureNames[f.Name] = true
		if f.Explanation == "" {
			t.Errorf("feature %q missing explanation", f.Name)
		}
	}
	if !featureNames["planned maintenance"] || !featureNames["spare parts"] {
		t.Errorf("expected both features, got %+v", delta.Features)
	}

	topicSet := map[string]bool{}
	for _, topic := range delta.Topics {
		topicSet[topic] = true
	}
	if !topicSet["maintenance"] || !topicSet["spare parts"] {
		t.Errorf("expected maintenance topics, got %+v", delta.Topics)
	}
}

func TestExtractNothing(t *testing.T) {
	delta := Extract("thanks, that helps", 1)
	if !delta.Empty() {
		t.Errorf("small talk should extract nothing, got %+v", delta)
	}
}
