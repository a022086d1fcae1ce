package extract

import "testing"

func TestFallbackCompanyBill(t *testing.T) {
	got := FallbackExtract("conedison. pay gas bill by 12/12/2026", testToday)
	if len(got) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(got))
	}
	c := got[0]
	if c.Title != "Pay conedison gas bill" {
		t.Errorf("title = %q, want %q", c.Title, "Pay conedison gas bill")
	}
	if c.Date != "2026-12-12" {
		t.Errorf("date = %q, want 2026-12-12", c.Date)
	}
	if c.Confidence != 0.85 {
		t.Errorf("confidence = %v, want 0.85", c.Confidence)
	}
	if len(c.Entities) != 1 || c.Entities[0] != "conedison" {
		t.Errorf("entities = %v, want [conedison]", c.Entities)
	}
}

func TestFallbackVerbPhrase(t *testing.T) {
	got := FallbackExtract("Please submit the expense report by 2026-03-15, thanks!", testToday)
	if len(got) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(got))
	}
	c := got[0]
	if c.Title != "Submit the expense report" {
		t.Errorf("title = %q, want %q", c.Title, "Submit the expense report")
	}
	if c.Date != "2026-03-15" {
		t.Errorf("date = %q, want 2026-03-15", c.Date)
	}
	if c.Confidence != 0.85 {
		t.Errorf("confidence = %v, want 0.85", c.Confidence)
	}
}

func TestFallbackRelativeDateIsWeaker(t *testing.T) {
	got := FallbackExtract("call the dentist tomorrow", testToday)
	if len(got) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(got))
	}
	c := got[0]
	if c.Date != "2025-01-02" {
		t.Errorf("date = %q, want 2025-01-02", c.Date)
	}
	if c.Confidence != 0.6 {
		t.Errorf("confidence = %v, want 0.6 for relative-token date", c.Confidence)
	}
}

func TestFallbackTimeExtraction(t *testing.T) {
	got := FallbackExtract("schedule standup on 1/6/2026 at 9:30 am", testToday)
	if len(got) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(got))
	}
	c := got[0]
	if c.Time == nil || *c.Time != "09:30" {
		t.Errorf("time = %v, want 09:30", c.Time)
	}
}

func TestFallbackNoDateYieldsNothing(t *testing.T) {
	for _, text := range []string{
		"pay the gas bill sometime",
		"random text without anything actionable",
		"",
	} {
		if got := FallbackExtract(text, testToday); len(got) != 0 {
			t.Errorf("FallbackExtract(%q) = %v, want empty (no fabricated dates)", text, got)
		}
	}
}

func TestFallbackNoTitleYieldsNothing(t *testing.T) {
	// A date with no constructible action phrase must not invent a title.
	if got := FallbackExtract("12/12/2026 was a strange day", testToday); len(got) != 0 {
		t.Errorf("expected empty, got %v", got)
	}
}
