package corpus

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeCorpus(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "faqs.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write corpus: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeCorpus(t, "Question,Answer\nWhat are your hours?,9am-5pm\nHow do I open an account?,Visit any branch with ID\n")

	entries, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Question != "What are your hours?" {
		t.Errorf("unexpected question: %q", entries[0].Question)
	}
	if entries[0].Combined != "What are your hours? 9am-5pm" {
		t.Errorf("unexpected combined field: %q", entries[0].Combined)
	}
}

func TestLoad_ColumnOrderIrrelevant(t *testing.T) {
	path := writeCorpus(t, "Class,Answer,Question\nhours,9am-5pm,What are your hours?\n")

	entries, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entries[0].Question != "What are your hours?" || entries[0].Answer != "9am-5pm" {
		t.Errorf("columns mismatched: %+v", entries[0])
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoad_MissingColumns(t *testing.T) {
	path := writeCorpus(t, "Q,A\nhello,world\n")

	_, err := Load(path)
	if !errors.Is(err, ErrMissingColumns) {
		t.Fatalf("expected ErrMissingColumns, got %v", err)
	}
}

func TestLoad_EmptyCorpus(t *testing.T) {
	path := writeCorpus(t, "Question,Answer\n")

	_, err := Load(path)
	if !errors.Is(err, ErrEmptyCorpus) {
		t.Fatalf("expected ErrEmptyCorpus, got %v", err)
	}
}

func TestLoad_BlankFieldFailsWholeLoad(t *testing.T) {
	path := writeCorpus(t, "Question,Answer\nWhat are your hours?,9am-5pm\nOrphan question,\n")

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for row with blank answer")
	}
}
