package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndRecent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	entries := []Entry{
		{Query: "list all files", Command: "ls -la", Method: "rule", Confidence: 1.0, CreatedAt: base},
		{Query: "check disk space", Command: "df -h", Method: "fuzzy", Confidence: 0.82, CreatedAt: base.Add(time.Minute)},
		{Query: "kill chrome", Command: "pkill chrome", Method: "template", Confidence: 0.95, CreatedAt: base.Add(2 * time.Minute)},
	}
	for _, e := range entries {
		if _, err := s.Record(ctx, e); err != nil {
			t.Fatalf("Record() error: %v", err)
		}
	}

	got, err := s.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent() error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("Recent() returned %d entries, want 3", len(got))
	}
	if got[0].Query != "kill chrome" || got[2].Query != "list all files" {
		t.Errorf("entries not newest first: %q .. %q", got[0].Query, got[2].Query)
	}
	if got[0].ID == "" {
		t.Error("Record did not assign an id")
	}
	if got[1].Confidence != 0.82 {
		t.Errorf("confidence = %v, want 0.82", got[1].Confidence)
	}
}

func TestRecentLimit(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		_, err := s.Record(ctx, Entry{
			Query:     "q",
			Command:   "c",
			Method:    "rule",
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		})
		if err != nil {
			t.Fatal(err)
		}
	}

	got, err := s.Recent(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Errorf("Recent(2) returned %d entries", len(got))
	}
}

func TestMarkExecuted(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	id, err := s.Record(ctx, Entry{Query: "list all files", Command: "ls", Method: "rule"})
	if err != nil {
		t.Fatal(err)
	}
	if err := s.MarkExecuted(ctx, id); err != nil {
		t.Fatalf("MarkExecuted() error: %v", err)
	}

	got, err := s.Recent(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || !got[0].Executed {
		t.Errorf("entry not marked executed: %+v", got)
	}
}

func TestClear(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if _, err := s.Record(ctx, Entry{Query: "q", Command: "c", Method: "rule"}); err != nil {
		t.Fatal(err)
	}
	if err := s.Clear(ctx); err != nil {
		t.Fatalf("Clear() error: %v", err)
	}
	got, err := s.Recent(ctx, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("Recent() after Clear returned %d entries", len(got))
	}
}
