package validator

import (
	"errors"
	"reflect"
	"testing"

	"newscrub/app/record"
)

func newTestValidator(t *testing.T) *Validator {
	t.Helper()
	v, err := New(Config{
		RequiredFields: []string{"heading", "content", "url"},
		Aliases:        record.DefaultAliases,
	})
	if err != nil {
		t.Fatal(err)
	}
	return v
}

func validRecord() record.Record {
	return record.Record{
		"heading": "A perfectly fine headline",
		"content": "This content is comfortably longer than the threshold.",
		"url":     "https://example.com/article",
		"pubDate": "2024-01-02",
		"guid":    "item-1",
	}
}

func TestRun_ValidRecord(t *testing.T) {
	v := newTestValidator(t)

	result := v.Run([]record.Record{validRecord()})

	if len(result.Valid) != 1 {
		t.Fatalf("Expected 1 valid record, got %d", len(result.Valid))
	}
	if len(result.Invalid) != 0 {
		t.Errorf("Expected 0 invalid records, got %d", len(result.Invalid))
	}
}

func TestRun_MissingFields(t *testing.T) {
	v := newTestValidator(t)

	result := v.Run([]record.Record{{"guid": "only-guid"}})

	if len(result.Invalid) != 1 {
		t.Fatalf("Expected 1 invalid record, got %d", len(result.Invalid))
	}

	want := []string{"missing_field:heading", "missing_field:content", "missing_field:url"}
	got := reasonStrings(result.Invalid[0].Reasons)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected reasons %v, got %v", want, got)
	}
}

func TestRun_BlankFieldCountsAsMissing(t *testing.T) {
	v := newTestValidator(t)

	rec := validRecord()
	rec["heading"] = "   "
	result := v.Run([]record.Record{rec})

	if len(result.Invalid) != 1 {
		t.Fatalf("Expected 1 invalid record, got %d", len(result.Invalid))
	}
	got := reasonStrings(result.Invalid[0].Reasons)
	if !reflect.DeepEqual(got, []string{"missing_field:heading"}) {
		t.Errorf("Expected [missing_field:heading], got %v", got)
	}
}

func TestRun_AliasSatisfiesRequirement(t *testing.T) {
	v := newTestValidator(t)

	rec := validRecord()
	delete(rec, "heading")
	rec["title"] = "Alias headline"

	result := v.Run([]record.Record{rec})

	if len(result.Valid) != 1 {
		t.Fatalf("Expected record with alias to be valid, reasons: %v", result.Invalid)
	}
	// The aliased value is surfaced under the canonical key.
	if result.Valid[0]["heading"] != "Alias headline" {
		t.Errorf("Expected canonical heading 'Alias headline', got '%s'", result.Valid[0]["heading"])
	}
}

func TestRun_InvalidURLScheme(t *testing.T) {
	v := newTestValidator(t)

	rec := validRecord()
	rec["url"] = "ftp://example.com/x"
	result := v.Run([]record.Record{rec})

	if len(result.Invalid) != 1 {
		t.Fatalf("Expected 1 invalid record, got %d", len(result.Invalid))
	}
	got := reasonStrings(result.Invalid[0].Reasons)
	if !reflect.DeepEqual(got, []string{"invalid_url"}) {
		t.Errorf("Expected [invalid_url], got %v", got)
	}
}

func TestRun_MissingURLNotDoublePenalized(t *testing.T) {
	v := newTestValidator(t)

	rec := validRecord()
	delete(rec, "url")
	result := v.Run([]record.Record{rec})

	if len(result.Invalid) != 1 {
		t.Fatalf("Expected 1 invalid record, got %d", len(result.Invalid))
	}
	got := reasonStrings(result.Invalid[0].Reasons)
	if !reflect.DeepEqual(got, []string{"missing_field:url"}) {
		t.Errorf("Expected only missing_field:url, got %v", got)
	}
}

func TestRun_URLWithoutHost(t *testing.T) {
	v := newTestValidator(t)

	rec := validRecord()
	rec["url"] = "https:///no-host"
	result := v.Run([]record.Record{rec})

	if len(result.Invalid) != 1 {
		t.Fatalf("Expected 1 invalid record, got %d", len(result.Invalid))
	}
	got := reasonStrings(result.Invalid[0].Reasons)
	if !reflect.DeepEqual(got, []string{"invalid_url"}) {
		t.Errorf("Expected [invalid_url], got %v", got)
	}
}

func TestRun_ContentTooShort(t *testing.T) {
	v := newTestValidator(t)

	rec := validRecord()
	rec["content"] = "Too short."
	result := v.Run([]record.Record{rec})

	if len(result.Invalid) != 1 {
		t.Fatalf("Expected 1 invalid record, got %d", len(result.Invalid))
	}
	got := reasonStrings(result.Invalid[0].Reasons)
	if !reflect.DeepEqual(got, []string{"content_too_short"}) {
		t.Errorf("Expected [content_too_short], got %v", got)
	}
}

func TestRun_ReasonOrderIsDeterministic(t *testing.T) {
	v := newTestValidator(t)

	// Missing heading, bad URL scheme, short content: findings come
	// back in rule order every run.
	rec := record.Record{
		"content": "tiny",
		"url":     "ftp://example.com/x",
	}

	want := []string{"missing_field:heading", "invalid_url", "content_too_short"}
	for i := 0; i < 5; i++ {
		result := v.Run([]record.Record{rec})
		got := reasonStrings(result.Invalid[0].Reasons)
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("Run %d: expected reasons %v, got %v", i, want, got)
		}
	}
}

func TestRun_PartitionPreservesOrder(t *testing.T) {
	v := newTestValidator(t)

	good1 := validRecord()
	good1["guid"] = "good-1"
	good2 := validRecord()
	good2["guid"] = "good-2"
	bad1 := record.Record{"guid": "bad-1"}
	bad2 := record.Record{"guid": "bad-2"}

	records := []record.Record{good1, bad1, good2, bad2}
	result := v.Run(records)

	if len(result.Valid)+len(result.Invalid) != len(records) {
		t.Fatalf("Partition lost records: %d + %d != %d",
			len(result.Valid), len(result.Invalid), len(records))
	}
	if result.Valid[0]["guid"] != "good-1" || result.Valid[1]["guid"] != "good-2" {
		t.Errorf("Valid records out of order: %v", result.Valid)
	}
	if result.Invalid[0].Record["guid"] != "bad-1" || result.Invalid[1].Record["guid"] != "bad-2" {
		t.Errorf("Invalid records out of order: %v", result.Invalid)
	}
}

func TestRun_DoesNotMutateInput(t *testing.T) {
	v := newTestValidator(t)

	rec := record.Record{"title": "Alias only", "content": "short", "url": "https://example.com"}
	original := rec.Clone()

	v.Run([]record.Record{rec})

	if !reflect.DeepEqual(rec, original) {
		t.Errorf("Input record was mutated: %v", rec)
	}
}

func TestRun_ThresholdIsConfigurable(t *testing.T) {
	v, err := New(Config{
		RequiredFields:   []string{"heading", "content", "url"},
		MinContentLength: 5,
	})
	if err != nil {
		t.Fatal(err)
	}

	rec := validRecord()
	rec["content"] = "exactly"
	result := v.Run([]record.Record{rec})

	if len(result.Valid) != 1 {
		t.Errorf("Expected content above custom threshold to pass, got %v", result.Invalid)
	}
}

func TestNew_EmptyRequiredFields(t *testing.T) {
	_, err := New(Config{})
	if !errors.Is(err, ErrNoRequiredFields) {
		t.Errorf("Expected ErrNoRequiredFields, got %v", err)
	}
}

func reasonStrings(reasons []Reason) []string {
	out := make([]string, 0, len(reasons))
	for _, r := range reasons {
		out = append(out, r.String())
	}
	return out
}
