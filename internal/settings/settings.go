package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// AppSettings holds all application settings
type AppSettings struct {
	// Editor Settings
	Placeholder     string `json:"placeholder"`
	WordWrap        bool   `json:"word_wrap"`
	HighlightCode   bool   `json:"highlight_code"`
	CodeLanguage    string `json:"code_language"`
	AutosaveSeconds int    `json:"autosave_seconds"`

	// Database Settings
	DatabasePath   string `json:"database_path"`
	AutosaveDrafts bool   `json:"autosave_drafts"`

	// UI Settings
	WindowWidth  int    `json:"window_width"`
	WindowHeight int    `json:"window_height"`
	Theme        string `json:"theme"`
}

// DefaultSettings returns the default application settings
func DefaultSettings() *AppSettings {
	homeDir, _ := os.UserHomeDir()
	defaultDBPath := filepath.Join(homeDir, ".richedit", "documents.db")

	return &AppSettings{
		// Editor Settings
		Placeholder:     "Start writing...",
		WordWrap:        true,
		HighlightCode:   true,
		CodeLanguage:    "go",
		AutosaveSeconds: 30,

		// Database Settings
		DatabasePath:   defaultDBPath,
		AutosaveDrafts: true,

		// UI Settings
		WindowWidth:  900,
		WindowHeight: 700,
		Theme:        "default",
	}
}

// Global settings instance
var Current *AppSettings

// RefreshCurrent returns the current settings instance, loading it on first use
func RefreshCurrent() *AppSettings {
	if Current == nil {
		err := Load()
		if err != nil {
			Current = DefaultSettings()
		}
	}
	return Current
}

// Initialize loads settings from file or creates default settings
func Initialize() error {
	Current = DefaultSettings()

	settingsPath := getSettingsPath()
	if _, err := os.Stat(settingsPath); os.IsNotExist(err) {
		// Settings file doesn't exist, create it with defaults
		return Save()
	}

	// Load existing settings
	return Load()
}

// Load reads settings from the settings file
func Load() error {
	settingsPath := getSettingsPath()

	data, err := os.ReadFile(settingsPath)
	if err != nil {
		return fmt.Errorf("failed to read settings file: %v", err)
	}

	err = json.Unmarshal(data, Current)
	if err != nil {
		return fmt.Errorf("failed to parse settings file: %v", err)
	}

	return nil
}

// Save writes current settings to the settings file
func Save() error {
	settingsPath := getSettingsPath()

	// Ensure directory exists
	settingsDir := filepath.Dir(settingsPath)
	if err := os.MkdirAll(settingsDir, 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %v", err)
	}

	data, err := json.MarshalIndent(Current, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %v", err)
	}

	err = os.WriteFile(settingsPath, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write settings file: %v", err)
	}

	return nil
}

// getSettingsPath returns the path to the settings file
func getSettingsPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".richedit", "settings.json")
}

// GetAutosaveInterval returns the autosave interval as time.Duration
func (s *AppSettings) GetAutosaveInterval() time.Duration {
	return time.Duration(s.AutosaveSeconds) * time.Second
}

// Validate checks settings for out-of-range values
func (s *AppSettings) Validate() []string {
	var errors []string

	if s.AutosaveSeconds <= 0 {
		errors = append(errors, "Autosave interval must be greater than 0")
	}

	if s.WindowWidth <= 0 || s.WindowHeight <= 0 {
		errors = append(errors, "Window size must be greater than 0")
	}

	if s.DatabasePath == "" {
		errors = append(errors, "Database path must not be empty")
	}

	return errors
}
