package entities

import (
	"path"
	"regexp"
	"strings"
	"time"
)

// File is the metadata row of an object held in object storage.
// StoragePath has the form <user id>/<category>/<object name>.
type File struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Name         string    `json:"name"`
	OriginalName string    `json:"original_name"`
	Category     string    `json:"category"`
	MimeType     string    `json:"mime_type"`
	Size         int64     `json:"size"`
	StoragePath  string    `json:"storage_path"`
	EntityType   string    `json:"entity_type,omitempty"`
	EntityID     string    `json:"entity_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type FileFilter struct {
	UserID     string
	Category   string
	EntityType string
	EntityID   string
}

const DefaultFileCategory = "general"

var unsafeNameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// SanitizeFileName keeps a storage-safe base name.
func SanitizeFileName(name string) string {
	base := path.Base(strings.ReplaceAll(name, "\\", "/"))
	base = unsafeNameChars.ReplaceAllString(base, "_")
	base = strings.Trim(base, "._")
	if base == "" {
		return "file"
	}
	return base
}

// SanitizeCategory lower-cases a category and keeps it to a single path segment.
func SanitizeCategory(category string) string {
	c := strings.ToLower(strings.TrimSpace(category))
	c = unsafeNameChars.ReplaceAllString(c, "-")
	c = strings.Trim(c, ".-")
	if c == "" {
		return DefaultFileCategory
	}
	return c
}

// StorageKey builds the object key for a file.
func StorageKey(userID, category, objectName string) string {
	return userID + "/" + category + "/" + objectName
}
