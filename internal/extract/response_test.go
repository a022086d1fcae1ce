package extract

import (
	"errors"
	"testing"
)

func TestDecodeResponseFencedWithCommentary(t *testing.T) {
	raw := "Here are the tasks I found:\n```json\n{\"tasks\":[{\"title\":\"Pay gas bill\",\"date\":\"2026-12-12\"}]}\n```\nLet me know if you need anything else."

	payload, err := DecodeResponse(raw)
	if err != nil {
		t.Fatalf("DecodeResponse failed: %v", err)
	}
	obj, ok := payload.(map[string]any)
	if !ok {
		t.Fatalf("expected object payload, got %T", payload)
	}
	tasks, ok := obj["tasks"].([]any)
	if !ok || len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %v", obj["tasks"])
	}
}

func TestDecodeResponseProseWrapped(t *testing.T) {
	raw := `Sure! {"title":"Renew passport","date":"2026-03-01"} Hope this helps.`
	payload, err := DecodeResponse(raw)
	if err != nil {
		t.Fatalf("DecodeResponse failed: %v", err)
	}
	obj, ok := payload.(map[string]any)
	if !ok || obj["title"] != "Renew passport" {
		t.Errorf("unexpected payload: %v", payload)
	}
}

func TestDecodeResponseBareArray(t *testing.T) {
	payload, err := DecodeResponse(`[{"title":"A","date":"2026-01-01"},{"title":"B","date":"2026-01-02"}]`)
	if err != nil {
		t.Fatalf("DecodeResponse failed: %v", err)
	}
	arr, ok := payload.([]any)
	if !ok || len(arr) != 2 {
		t.Errorf("expected 2-element array, got %v", payload)
	}
}

func TestDecodeResponseRepairsMalformedJSON(t *testing.T) {
	// Single quotes and a trailing comma: invalid JSON that models emit.
	raw := "{'title': 'Pay rent', 'date': '2026-02-01',}"
	payload, err := DecodeResponse(raw)
	if err != nil {
		t.Fatalf("DecodeResponse failed on repairable JSON: %v", err)
	}
	obj, ok := payload.(map[string]any)
	if !ok || obj["title"] != "Pay rent" {
		t.Errorf("unexpected payload: %v", payload)
	}
}

func TestDecodeResponseUnparsable(t *testing.T) {
	for _, raw := range []string{
		"",
		"no json here at all",
		"conedison. pay gas bill by 12/12/2026",
	} {
		_, err := DecodeResponse(raw)
		if !errors.Is(err, ErrUnparsableResponse) {
			t.Errorf("DecodeResponse(%q) error = %v, want ErrUnparsableResponse", raw, err)
		}
	}
}
