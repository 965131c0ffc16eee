package store

import (
	"strings"
	"testing"

	"github.com/zulandar/messagecraft/internal/models"
)

func TestCollection_GetEmpty(t *testing.T) {
	msgs := Messages(NewMemoryKV())
	got, err := msgs.Get()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}

func TestCollection_AddPrependOrder(t *testing.T) {
	msgs := Messages(NewMemoryKV())

	for _, id := range []string{"a", "b", "c"} {
		if err := msgs.Add(models.Message{ID: id, Recipient: "r"}); err != nil {
			t.Fatalf("add %s: %v", id, err)
		}
	}

	got, err := msgs.Get()
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	want := []string{"c", "b", "a"} // most-recently-added first
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("got[%d].ID = %q, want %q", i, got[i].ID, id)
		}
	}
}

func TestCollection_AddAppendOrder(t *testing.T) {
	cats := Categories(NewMemoryKV())

	for _, id := range []string{"a", "b", "c"} {
		if err := cats.Add(models.MessageCategory{ID: id, Name: "n"}); err != nil {
			t.Fatalf("add %s: %v", id, err)
		}
	}

	got, err := cats.Get()
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	want := []string{"a", "b", "c"}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("got[%d].ID = %q, want %q", i, got[i].ID, id)
		}
	}
}

func TestCollection_DeleteExactlyOne(t *testing.T) {
	tpls := Templates(NewMemoryKV())
	for _, id := range []string{"a", "b", "c"} {
		if err := tpls.Add(models.MessageTemplate{ID: id, Name: id}); err != nil {
			t.Fatal(err)
		}
	}

	if err := tpls.Delete("b"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	got, _ := tpls.Get()
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	for _, tpl := range got {
		if tpl.ID == "b" {
			t.Error("deleted template still present")
		}
	}
}

func TestCollection_DeleteIdempotent(t *testing.T) {
	msgs := Messages(NewMemoryKV())
	if err := msgs.Add(models.Message{ID: "a"}); err != nil {
		t.Fatal(err)
	}

	if err := msgs.Delete("a"); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := msgs.Delete("a"); err != nil {
		t.Fatalf("second delete should be a no-op: %v", err)
	}
	if err := msgs.Delete("never-existed"); err != nil {
		t.Fatalf("deleting unknown id should be a no-op: %v", err)
	}

	got, _ := msgs.Get()
	if len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}

func TestCollection_Clear(t *testing.T) {
	kv := NewMemoryKV()
	msgs := Messages(kv)
	if err := msgs.Add(models.Message{ID: "a"}); err != nil {
		t.Fatal(err)
	}

	if err := msgs.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	got, err := msgs.Get()
	if err != nil {
		t.Fatalf("get after clear: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
	if _, ok, _ := kv.Get(KeyMessages); ok {
		t.Error("key should be removed entirely")
	}
}

func TestCollection_MalformedDataSurfacesError(t *testing.T) {
	kv := NewMemoryKV()
	if err := kv.Set(KeyMessages, "{not json"); err != nil {
		t.Fatal(err)
	}

	_, err := Messages(kv).Get()
	if err == nil {
		t.Fatal("expected decode error for malformed blob")
	}
	if !strings.Contains(err.Error(), "decode") {
		t.Errorf("error = %q, want to contain %q", err.Error(), "decode")
	}
}

func TestCollection_IndependentKeys(t *testing.T) {
	kv := NewMemoryKV()
	if err := Messages(kv).Add(models.Message{ID: "m"}); err != nil {
		t.Fatal(err)
	}
	if err := Categories(kv).Add(models.MessageCategory{ID: "c"}); err != nil {
		t.Fatal(err)
	}

	if err := Messages(kv).Clear(); err != nil {
		t.Fatal(err)
	}
	cats, err := Categories(kv).Get()
	if err != nil {
		t.Fatal(err)
	}
	if len(cats) != 1 {
		t.Errorf("clearing messages must not touch categories, len = %d", len(cats))
	}
}
