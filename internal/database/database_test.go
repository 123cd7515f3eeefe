package database

import (
	"path/filepath"
	"testing"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(filepath.Join(t.TempDir(), "documents.db"))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSaveAndGetDocument(t *testing.T) {
	db := newTestDB(t)

	doc := &Document{Title: "Notes", HTML: "<p style=\"margin: 0; padding: 0;\">hello</p>"}
	id, err := db.SaveDocument(doc)
	if err != nil {
		t.Fatalf("SaveDocument failed: %v", err)
	}
	if id == 0 {
		t.Error("expected non-zero id for new document")
	}

	got, err := db.GetDocument(id)
	if err != nil {
		t.Fatalf("GetDocument failed: %v", err)
	}
	if got.Title != "Notes" {
		t.Errorf("title = %q, want %q", got.Title, "Notes")
	}
	if got.HTML != doc.HTML {
		t.Errorf("html = %q, want %q", got.HTML, doc.HTML)
	}
}

func TestSaveDocumentUpdatesExisting(t *testing.T) {
	db := newTestDB(t)

	doc := &Document{Title: "Draft", HTML: "<p>v1</p>"}
	id, err := db.SaveDocument(doc)
	if err != nil {
		t.Fatalf("SaveDocument failed: %v", err)
	}

	doc.ID = id
	doc.HTML = "<p>v2</p>"
	id2, err := db.SaveDocument(doc)
	if err != nil {
		t.Fatalf("SaveDocument update failed: %v", err)
	}
	if id2 != id {
		t.Errorf("update returned id %d, want %d", id2, id)
	}

	docs, err := db.ListDocuments()
	if err != nil {
		t.Fatalf("ListDocuments failed: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("expected 1 document after update, got %d", len(docs))
	}
	if docs[0].HTML != "<p>v2</p>" {
		t.Errorf("html = %q, want %q", docs[0].HTML, "<p>v2</p>")
	}
}

func TestDeleteDocument(t *testing.T) {
	db := newTestDB(t)

	id, err := db.SaveDocument(&Document{Title: "Gone", HTML: "<p>bye</p>"})
	if err != nil {
		t.Fatalf("SaveDocument failed: %v", err)
	}

	if err := db.DeleteDocument(id); err != nil {
		t.Fatalf("DeleteDocument failed: %v", err)
	}

	if _, err := db.GetDocument(id); err == nil {
		t.Error("expected error getting deleted document")
	}

	docs, err := db.ListDocuments()
	if err != nil {
		t.Fatalf("ListDocuments failed: %v", err)
	}
	if len(docs) != 0 {
		t.Errorf("expected empty list, got %d documents", len(docs))
	}
}
