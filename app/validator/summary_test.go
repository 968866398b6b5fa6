package validator

import (
	"reflect"
	"testing"

	"newscrub/app/record"
)

func TestBuildSummary_Counts(t *testing.T) {
	valid := []record.Record{validRecord(), validRecord()}
	invalid := []InvalidRecord{
		{Record: record.Record{}, Reasons: []Reason{MissingField("heading")}},
	}

	s := buildSummary(valid, invalid)

	if s.Total != 3 {
		t.Errorf("Expected total 3, got %d", s.Total)
	}
	if s.Valid != 2 {
		t.Errorf("Expected valid 2, got %d", s.Valid)
	}
	if s.Invalid != 1 {
		t.Errorf("Expected invalid 1, got %d", s.Invalid)
	}
}

func TestBuildSummary_Completeness(t *testing.T) {
	withGUID := validRecord()
	withoutGUID := validRecord()
	delete(withoutGUID, "guid")

	s := buildSummary([]record.Record{withGUID, withoutGUID}, nil)

	if s.Completeness["guid"] != 50.00 {
		t.Errorf("Expected guid completeness 50.00, got %.2f", s.Completeness["guid"])
	}
	if s.Completeness["heading"] != 100.00 {
		t.Errorf("Expected heading completeness 100.00, got %.2f", s.Completeness["heading"])
	}

	s = buildSummary([]record.Record{withGUID, withGUID.Clone()}, nil)
	if s.Completeness["guid"] != 100.00 {
		t.Errorf("Expected guid completeness 100.00, got %.2f", s.Completeness["guid"])
	}
}

func TestBuildSummary_CompletenessRounding(t *testing.T) {
	withGUID := validRecord()
	a := validRecord()
	delete(a, "guid")
	b := validRecord()
	delete(b, "guid")

	// 1 of 3 = 33.333... rounds to 33.33.
	s := buildSummary([]record.Record{withGUID, a, b}, nil)
	if s.Completeness["guid"] != 33.33 {
		t.Errorf("Expected guid completeness 33.33, got %.2f", s.Completeness["guid"])
	}
}

func TestBuildSummary_NoValidRecords(t *testing.T) {
	s := buildSummary(nil, []InvalidRecord{
		{Record: record.Record{}, Reasons: []Reason{MissingField("url")}},
	})

	for _, field := range record.RecognizedFields {
		if s.Completeness[field] != 0 {
			t.Errorf("Expected %s completeness 0 with no valid records, got %.2f",
				field, s.Completeness[field])
		}
	}
}

func TestBuildSummary_ReasonFrequencyOrder(t *testing.T) {
	invalid := []InvalidRecord{
		{Reasons: []Reason{MissingField("url"), ContentTooShort}},
		{Reasons: []Reason{ContentTooShort}},
		{Reasons: []Reason{InvalidURL}},
	}

	s := buildSummary(nil, invalid)

	// content_too_short leads on frequency; invalid_url beats
	// missing_field:url alphabetically on the tie.
	want := []ReasonCount{
		{Reason: "content_too_short", Count: 2},
		{Reason: "invalid_url", Count: 1},
		{Reason: "missing_field:url", Count: 1},
	}
	if !reflect.DeepEqual(s.ReasonCounts, want) {
		t.Errorf("Expected reason counts %v, got %v", want, s.ReasonCounts)
	}
}
