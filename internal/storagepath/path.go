// Package storagepath derives and validates object-storage keys for idea
// files and images. All functions are pure string manipulation; the only
// ambient input is the current time, injected through a package seam so
// tests stay deterministic.
package storagepath

import (
	"fmt"
	"path"
	"strings"
	"time"
)

// Prefix is the mandatory leading segment of every storage key.
const Prefix = "idea-files/"

const maxIdeaNameLen = 50

// nowMillis is a seam for testing key disambiguation.
var nowMillis = func() int64 { return time.Now().UnixMilli() }

// SanitizeIdeaName turns an idea display name into a path-safe slug:
// whitespace runs become a single hyphen, characters outside [A-Za-z0-9-_]
// are stripped, the result is cut to 50 characters and lower-cased, and an
// empty result becomes "untitled". Deterministic for a given input.
func SanitizeIdeaName(name string) string {
	s := strings.Join(strings.Fields(name), "-")

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isPathSafe(r) {
			b.WriteRune(r)
		}
	}
	s = b.String()

	if len(s) > maxIdeaNameLen {
		s = s[:maxIdeaNameLen]
	}
	s = strings.ToLower(s)
	if s == "" {
		s = "untitled"
	}
	return s
}

func isPathSafe(r rune) bool {
	return (r >= 'A' && r <= 'Z') ||
		(r >= 'a' && r <= 'z') ||
		(r >= '0' && r <= '9') ||
		r == '-' || r == '_'
}

// sanitizeFileName cleans an original filename for use inside a key while
// preserving its extension: whitespace runs become hyphens and everything
// outside [A-Za-z0-9-_.] is dropped.
func sanitizeFileName(name string) string {
	s := strings.Join(strings.Fields(name), "-")

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isPathSafe(r) || r == '.' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "file"
	}
	return b.String()
}

// BuildBasePath returns the per-idea key prefix:
// "idea-files/{ideaID}-{sanitizedIdeaName}".
func BuildBasePath(ideaID, ideaName string) string {
	return Prefix + ideaID + "-" + SanitizeIdeaName(ideaName)
}

// BuildFilePath appends a document segment to a base path:
// "{base}/{category}/{stem}_{timestampMillis}{ext}". The spliced timestamp
// keeps two uploads of the same original filename from colliding.
func BuildFilePath(basePath, category, originalFileName string) string {
	name := sanitizeFileName(originalFileName)
	ext := path.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	if stem == "" {
		stem = "file"
	}
	return fmt.Sprintf("%s/%s/%s_%d%s", basePath, category, stem, nowMillis(), ext)
}

// BuildImagePath appends an image segment to a base path:
// "{base}/images/{timestampMillis}-{sanitizedOriginalName}". Images place
// the disambiguating timestamp in front of the name rather than splicing it
// before the extension; both keep uniqueness and the extension.
func BuildImagePath(basePath, originalFileName string) string {
	return fmt.Sprintf("%s/images/%d-%s", basePath, nowMillis(), sanitizeFileName(originalFileName))
}

// FormatDisplayFileName strips the spliced "_{timestampMillis}" segment from
// a stored filename, recovering the name shown to users.
// "report_1712345678901.pdf" -> "report.pdf".
func FormatDisplayFileName(storedName string) string {
	ext := path.Ext(storedName)
	stem := strings.TrimSuffix(storedName, ext)

	i := strings.LastIndex(stem, "_")
	if i < 0 {
		return storedName
	}
	suffix := stem[i+1:]
	if suffix == "" || !isAllDigits(suffix) {
		return storedName
	}
	return stem[:i] + ext
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// IsValid rejects keys that attempt traversal or escape the idea-files
// namespace. A failing key must never reach the network layer.
func IsValid(key string) bool {
	if strings.Contains(key, "..") {
		return false
	}
	return strings.HasPrefix(key, Prefix)
}
