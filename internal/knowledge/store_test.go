package knowledge

import (
	"path/filepath"
	"testing"

	"github.com/pmpulse/analyzer/internal/report"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "knowledge.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSeedIsIdempotent(t *testing.T) {
	store := tempStore(t)

	if err := store.Seed(report.DomainSchedule); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := store.Seed(report.DomainSchedule); err != nil {
		t.Fatalf("re-seed: %v", err)
	}

	docs, err := store.List(report.DomainSchedule)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(docs) != len(DefaultDocuments(report.DomainSchedule)) {
		t.Fatalf("expected %d documents, got %d", len(DefaultDocuments(report.DomainSchedule)), len(docs))
	}
}

func TestSeedAllCoversEveryDomain(t *testing.T) {
	store := tempStore(t)

	if err := store.SeedAll(); err != nil {
		t.Fatalf("seed all: %v", err)
	}

	for _, domain := range report.AllDomains() {
		docs, err := store.List(domain)
		if err != nil {
			t.Fatalf("list %s: %v", domain, err)
		}
		if len(docs) == 0 {
			t.Fatalf("domain %s not seeded", domain)
		}
	}
}

func TestAddGetDelete(t *testing.T) {
	store := tempStore(t)

	doc, err := store.Add(Document{
		Domain:  string(report.DomainCost),
		Title:   "Nota interna",
		Content: "Categorias de custo exigem revisão mensal.",
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if doc.ID == "" {
		t.Fatal("expected a generated id")
	}

	got, err := store.Get(doc.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != doc.Title || got.Content != doc.Content {
		t.Fatalf("roundtrip mismatch: %+v", got)
	}

	if err := store.Delete(doc.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := store.Delete(doc.ID); err == nil {
		t.Fatal("deleting a missing document must fail")
	}
}
