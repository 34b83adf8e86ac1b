package engine

import (
	"context"
	"testing"
	"time"
)

func TestLearningsNewestFirst(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()
	pinClock(svc, localTime(2026, time.March, 10, 12, 0))

	if _, err := svc.AddLearning(ctx, "first", nil); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.AddLearning(ctx, "second", []string{"go"}); err != nil {
		t.Fatalf("add: %v", err)
	}

	entries, err := svc.Learnings(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 2 || entries[0].Content != "second" {
		t.Fatalf("order wrong: %+v", entries)
	}
	if entries[0].Tags[0] != "go" {
		t.Fatalf("tags=%v", entries[0].Tags)
	}
	if entries[1].Tags == nil {
		t.Fatal("nil tags not defaulted")
	}

	if _, err := svc.AddLearning(ctx, "  ", nil); err == nil {
		t.Fatal("blank content accepted")
	}
}

func TestLearningsReadRepairsLegacyEntries(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	raw := `[{"id":"a","text":"via old field"}]`
	if err := svc.Store().WriteRaw(ctx, fullKey(keyLearnings), raw); err != nil {
		t.Fatalf("write raw: %v", err)
	}

	entries, err := svc.Learnings(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if entries[0].Content != "via old field" {
		t.Fatalf("content=%q", entries[0].Content)
	}
	if entries[0].Tags == nil {
		t.Fatal("tags still nil")
	}
}

func TestDeleteLearning(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	e, err := svc.AddLearning(ctx, "ephemeral", nil)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := svc.DeleteLearning(ctx, e.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.DeleteLearning(ctx, e.ID); err == nil {
		t.Fatal("second delete reported success")
	}
}

func TestProfileDefaults(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	p, err := svc.Profile(ctx)
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if p.Name != "User" {
		t.Fatalf("default name=%q", p.Name)
	}

	p.Name = "Asha"
	if err := svc.SaveProfile(ctx, p); err != nil {
		t.Fatalf("save: %v", err)
	}
	p, err = svc.Profile(ctx)
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if p.Name != "Asha" {
		t.Fatalf("name=%q", p.Name)
	}
}

func TestTargetsLifecycle(t *testing.T) {
	svc, cleanup := newTestService(t)
	defer cleanup()
	ctx := context.Background()

	tgt, err := svc.AddTarget(ctx, "Read two books", PeriodMonthly)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if tgt.Period != PeriodMonthly || tgt.Completed {
		t.Fatalf("target=%+v", tgt)
	}

	tgt, err = svc.ToggleTarget(ctx, tgt.ID)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !tgt.Completed {
		t.Fatal("toggle did not complete")
	}
	tgt, err = svc.ToggleTarget(ctx, tgt.ID)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if tgt.Completed {
		t.Fatal("toggle did not reopen")
	}

	if err := svc.DeleteTarget(ctx, tgt.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	targets, err := svc.Targets(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(targets) != 0 {
		t.Fatalf("targets=%+v", targets)
	}

	if _, err := svc.AddTarget(ctx, " ", PeriodWeekly); err == nil {
		t.Fatal("blank text accepted")
	}
}
