package remind_test

import (
	"context"
	"testing"
	"time"

	remind "github.com/pockettasks/remind"
)

var today = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

func TestExtractStructured(t *testing.T) {
	raw := "```json\n{\"tasks\":[{\"title\":\"Pay gas bill\",\"date\":\"12/12/2026\",\"confidence\":0.9}]}\n```"

	got := remind.Extract(raw, today)
	if len(got) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(got))
	}
	if got[0].Date != "2026-12-12" || got[0].Type != remind.TaskBill {
		t.Errorf("unexpected candidate: %+v", got[0])
	}
}

func TestExtractFallsBackOnPlainText(t *testing.T) {
	result := remind.ExtractResult("conedison. pay gas bill by 12/12/2026", today)
	if result.Source != "fallback" {
		t.Errorf("source = %q, want fallback", result.Source)
	}
	if len(result.Candidates) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(result.Candidates))
	}
}

func TestExtractNeverFails(t *testing.T) {
	if got := remind.Extract("absolutely nothing useful", today); len(got) != 0 {
		t.Errorf("expected empty list, got %v", got)
	}
}

type fakeProvider struct {
	response string
	err      error
}

func (f *fakeProvider) Complete(ctx context.Context, prompt string) (string, error) {
	return f.response, f.err
}

func TestExtractWithProvider(t *testing.T) {
	p := &fakeProvider{response: `{"tasks":[{"title":"Renew passport","date":"2026-03-01"}]}`}

	got, err := remind.ExtractWithProvider(context.Background(), p, "some document", today)
	if err != nil {
		t.Fatalf("ExtractWithProvider failed: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Renew passport" {
		t.Errorf("unexpected candidates: %+v", got)
	}
}

func TestConstants(t *testing.T) {
	if remind.TaskBill != "bill" {
		t.Errorf("TaskBill = %q, want %q", remind.TaskBill, "bill")
	}
	if remind.TaskAppointment != "appointment" {
		t.Errorf("TaskAppointment = %q, want %q", remind.TaskAppointment, "appointment")
	}
}
