package credentials

import (
	"errors"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

func TestStoreSaveAndRead(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := NewStore(fs, "/data/credentials/gsheets-credentials.json")

	if store.Exists() {
		t.Fatalf("expected no credentials before upload")
	}
	if _, err := store.Read(); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound before upload, got %v", err)
	}

	if err := store.Save(strings.NewReader(`{"type":"service_account","project_id":"demo"}`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if !store.Exists() {
		t.Fatalf("expected credentials to exist after upload")
	}

	data, err := store.Data()
	if err != nil {
		t.Fatalf("data: %v", err)
	}
	if data["project_id"] != "demo" {
		t.Fatalf("expected project_id demo, got %v", data["project_id"])
	}

	entries, err := afero.ReadDir(fs, "/data/credentials")
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected temp file to be renamed away, found %d entries", len(entries))
	}
}

func TestStoreSaveOverwrites(t *testing.T) {
	store := NewStore(afero.NewMemMapFs(), "/creds/key.json")
	if err := store.Save(strings.NewReader(`{"v":1}`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Save(strings.NewReader(`{"v":2}`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	data, err := store.Data()
	if err != nil {
		t.Fatalf("data: %v", err)
	}
	if data["v"] != float64(2) {
		t.Fatalf("expected second upload to win, got %v", data["v"])
	}
}

func TestStoreDataInvalidJSON(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/key.json", []byte("not json"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	store := NewStore(fs, "/key.json")
	if _, err := store.Data(); !errors.Is(err, ErrInvalidJSON) {
		t.Fatalf("expected ErrInvalidJSON, got %v", err)
	}
}
