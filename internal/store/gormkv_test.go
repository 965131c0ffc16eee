package store

import (
	"testing"

	"github.com/zulandar/messagecraft/internal/db"
	"github.com/zulandar/messagecraft/internal/models"
)

func openTestKV(t *testing.T) *GormKV {
	t.Helper()
	gdb, err := db.ConnectSQLite(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	kv, err := NewGormKV(gdb)
	if err != nil {
		t.Fatalf("new gorm kv: %v", err)
	}
	return kv
}

func TestGormKV_GetAbsent(t *testing.T) {
	kv := openTestKV(t)
	_, ok, err := kv.Get("nope")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("absent key reported present")
	}
}

func TestGormKV_SetGetRoundTrip(t *testing.T) {
	kv := openTestKV(t)
	if err := kv.Set("k", `[{"id":"1"}]`); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, ok, err := kv.Get("k")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok || got != `[{"id":"1"}]` {
		t.Errorf("Get = %q, %v; want stored value, true", got, ok)
	}
}

func TestGormKV_SetOverwrites(t *testing.T) {
	kv := openTestKV(t)
	if err := kv.Set("k", "one"); err != nil {
		t.Fatal(err)
	}
	if err := kv.Set("k", "two"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, _, _ := kv.Get("k")
	if got != "two" {
		t.Errorf("Get = %q, want %q", got, "two")
	}
}

func TestGormKV_Delete(t *testing.T) {
	kv := openTestKV(t)
	if err := kv.Set("k", "v"); err != nil {
		t.Fatal(err)
	}
	if err := kv.Delete("k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := kv.Get("k"); ok {
		t.Error("deleted key still present")
	}
	// Deleting again is a no-op.
	if err := kv.Delete("k"); err != nil {
		t.Fatalf("second delete: %v", err)
	}
}

func TestGormKV_BacksCollections(t *testing.T) {
	kv := openTestKV(t)
	msgs := Messages(kv)

	if err := msgs.Add(models.Message{ID: "a", Recipient: "Alice"}); err != nil {
		t.Fatal(err)
	}
	if err := msgs.Add(models.Message{ID: "b", Recipient: "Bob"}); err != nil {
		t.Fatal(err)
	}

	got, err := msgs.Get()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].ID != "b" {
		t.Errorf("got %+v, want b first", got)
	}
}
