package bbolt

import (
	"context"
	"path/filepath"
	"testing"

	"eventchance/internal/domain"
)

func TestSwitchStorePutGet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "switches.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	key := domain.SwitchKey{MapID: 3, ObjectID: 12, Slot: domain.SlotA}

	if err := store.SetSwitch(ctx, key, true); err != nil {
		t.Fatalf("set switch: %v", err)
	}

	got, err := store.GetSwitch(ctx, key)
	if err != nil {
		t.Fatalf("get switch: %v", err)
	}
	if !got {
		t.Fatalf("expected switch %s to be ON", key)
	}

	unknown, err := store.GetSwitch(ctx, domain.SwitchKey{MapID: 3, ObjectID: 12, Slot: domain.SlotB})
	if err != nil {
		t.Fatalf("get unknown switch: %v", err)
	}
	if unknown {
		t.Fatal("expected unknown switch to read as OFF")
	}
}

func TestSwitchStoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "switches.db")
	ctx := context.Background()
	key := domain.SwitchKey{MapID: 1, ObjectID: 5, Slot: domain.SlotC}

	store, err := Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := store.SetSwitch(ctx, key, true); err != nil {
		t.Fatalf("set switch: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close store: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.GetSwitch(ctx, key)
	if err != nil {
		t.Fatalf("get switch: %v", err)
	}
	if !got {
		t.Fatal("expected switch to persist across reopen")
	}
}

func TestSwitchStoreListByMap(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "switches.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	keys := []domain.SwitchKey{
		{MapID: 2, ObjectID: 10, Slot: domain.SlotA},
		{MapID: 2, ObjectID: 9, Slot: domain.SlotB},
		{MapID: 20, ObjectID: 1, Slot: domain.SlotA},
	}
	for _, k := range keys {
		if err := store.SetSwitch(ctx, k, true); err != nil {
			t.Fatalf("set switch %s: %v", k, err)
		}
	}

	list, err := store.ListSwitches(ctx, 2)
	if err != nil {
		t.Fatalf("list switches: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 switches for map 2, got %d", len(list))
	}
	if list[0].ObjectID != 9 || list[1].ObjectID != 10 {
		t.Fatalf("expected switches ordered by object, got %+v", list)
	}
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open("  "); err == nil {
		t.Fatal("expected error for empty path")
	}
}
