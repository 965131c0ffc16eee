package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestParseTone(t *testing.T) {
	tests := []struct {
		in      string
		want    Tone
		wantErr bool
	}{
		{"formal", ToneFormal, false},
		{"informal", ToneInformal, false},
		{"friendly", ToneFriendly, false},
		{"urgent", ToneUrgent, false},
		{"", "", true},
		{"Friendly", "", true},
		{"sarcastic", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTone(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseTone(%q) = %q, want error", tt.in, got)
				}
				if !strings.Contains(err.Error(), "unknown tone") {
					t.Errorf("error = %q, want to contain %q", err.Error(), "unknown tone")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseTone(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestMessageJSONShape(t *testing.T) {
	msg := Message{
		ID:               "m1",
		Recipient:        "Alice",
		Context:          "birthday",
		Tone:             ToneFriendly,
		Details:          "",
		GeneratedMessage: "Happy birthday, Alice!",
		CreatedAt:        time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	data, err := json.Marshal(msg)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, key := range []string{`"id"`, `"recipient"`, `"context"`, `"tone"`, `"details"`, `"generatedMessage"`, `"createdAt"`} {
		if !strings.Contains(string(data), key) {
			t.Errorf("marshaled message missing %s: %s", key, data)
		}
	}
}

func TestTemplateCategoryIDOmitted(t *testing.T) {
	tpl := MessageTemplate{ID: "t1", Name: "Thanks", Context: "thank you note", Tone: ToneFormal}
	data, err := json.Marshal(tpl)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(data), "categoryId") {
		t.Errorf("empty categoryId should be omitted: %s", data)
	}
}

func TestRecordIDs(t *testing.T) {
	if got := (Message{ID: "a"}).RecordID(); got != "a" {
		t.Errorf("Message.RecordID() = %q, want %q", got, "a")
	}
	if got := (MessageTemplate{ID: "b"}).RecordID(); got != "b" {
		t.Errorf("MessageTemplate.RecordID() = %q, want %q", got, "b")
	}
	if got := (MessageCategory{ID: "c"}).RecordID(); got != "c" {
		t.Errorf("MessageCategory.RecordID() = %q, want %q", got, "c")
	}
}
