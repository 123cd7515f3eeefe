package data

import (
	"log"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2/data/binding"

	"github.com/ispapp/richedit/internal/database"
	"github.com/ispapp/richedit/internal/settings"
)

// Global data bindings
var (
	// DocumentList holds the stored documents for the recent-documents view
	DocumentList binding.UntypedList

	// StatusText holds the status bar message
	StatusText binding.String

	// Dirty indicates unsaved changes in the editor
	Dirty binding.Bool

	// Database instance
	DB *database.DB
)

// Init initializes all global bindings and the database
func Init() {
	DocumentList = binding.NewUntypedList()
	StatusText = binding.NewString()
	Dirty = binding.NewBool()

	// Initialize database in the background to avoid blocking UI
	go InitDatabase()
}

// InitDatabase initializes the database after the main app has started
func InitDatabase() {
	if DB != nil {
		return
	}

	var err error
	var dbPath string

	// Use settings database path if available, otherwise use default
	if settings.Current != nil {
		dbPath = settings.Current.DatabasePath
	} else {
		homeDir, _ := os.UserHomeDir()
		dbPath = filepath.Join(homeDir, ".richedit", "documents.db")
	}

	DB, err = database.New(dbPath)
	if err != nil {
		log.Printf("Failed to initialize database: %v", err)
		return
	}

	ReloadDocuments()
}

// ReloadDocuments refreshes the document list from the database
func ReloadDocuments() {
	if DB == nil {
		return
	}

	docs, err := DB.ListDocuments()
	if err != nil {
		log.Printf("Failed to load documents: %v", err)
		return
	}

	items := make([]interface{}, len(docs))
	for i, doc := range docs {
		items[i] = doc
	}
	if err := DocumentList.Set(items); err != nil {
		log.Printf("Failed to update document list: %v", err)
	}
}

// SaveDocument stores a document and refreshes the list
func SaveDocument(doc *database.Document) {
	if DB == nil {
		log.Printf("No database available, document not saved")
		return
	}

	id, err := DB.SaveDocument(doc)
	if err != nil {
		log.Printf("Failed to save document: %v", err)
		return
	}
	doc.ID = id

	ReloadDocuments()
}

// DeleteDocument removes a document and refreshes the list
func DeleteDocument(id int64) error {
	if DB == nil {
		return nil
	}

	if err := DB.DeleteDocument(id); err != nil {
		return err
	}

	ReloadDocuments()
	return nil
}

// Close closes the database connection
func Close() {
	if DB != nil {
		if err := DB.Close(); err != nil {
			log.Printf("Failed to close database: %v", err)
		}
		DB = nil
	}
}
