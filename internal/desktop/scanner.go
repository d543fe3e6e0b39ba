// Package desktop indexes desktop-entry descriptor files into a searchable
// catalog of applications with weighted keywords.
package desktop

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"launchbox/internal/models"
)

// Keyword weights by source field. Name tokens dominate so that name
// matches outrank description matches.
const (
	nameWeight    = 1000
	commentWeight = 1
	keywordWeight = 1
)

// DebugMode enables debug logging
var DebugMode = false

// debugLog logs a message if debug mode is enabled
func debugLog(format string, args ...interface{}) {
	if DebugMode {
		fmt.Fprintf(os.Stderr, "[DESKTOP] "+format+"\n", args...)
	}
}

// Scanner builds the application catalog from descriptor directories.
type Scanner struct {
	dirs []string
}

// New creates a Scanner over an ordered list of descriptor directories.
func New(dirs ...string) *Scanner {
	return &Scanner{dirs: dirs}
}

// Scan indexes every regular file in the configured directories, in order.
// Missing directories and unreadable files are skipped; a partial catalog
// is strictly better than none. If two entries share an id (a directory
// listed twice), the later one wins.
func (s *Scanner) Scan() models.Catalog {
	start := time.Now()
	var catalog models.Catalog
	seen := make(map[string]int) // id -> catalog index

	for _, dir := range s.dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			debugLog("Skipping %s: %v", dir, err)
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			path := filepath.Join(dir, entry.Name())
			app, err := parseDescriptor(path)
			if err != nil {
				debugLog("Skipping %s: %v", path, err)
				continue
			}
			if i, ok := seen[app.ID]; ok {
				catalog[i] = app
				continue
			}
			seen[app.ID] = len(catalog)
			catalog = append(catalog, app)
		}
	}

	debugLog("Indexed %d applications in %v", len(catalog), time.Since(start))
	return catalog
}

// parseDescriptor reads one descriptor file into an Application. Missing
// fields stay empty; the entry is still usable.
func parseDescriptor(path string) (*models.Application, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	app := &models.Application{ID: path}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case app.Name == "" && strings.HasPrefix(line, "Name="):
			app.Name = line[len("Name="):]
		case app.GenericName == "" && strings.HasPrefix(line, "GenericName="):
			app.GenericName = line[len("GenericName="):]
		case app.Comment == "" && strings.HasPrefix(line, "Comment="):
			app.Comment = line[len("Comment="):]
		case app.CommandLine == "" && strings.HasPrefix(line, "Exec=") && line[len("Exec="):] != "":
			app.CommandLine = line[len("Exec="):]
		case app.CommandLine == "" && strings.HasPrefix(line, "Keywords="):
			// Keywords are only indexed while no Exec= line has been
			// seen. Load-bearing compatibility quirk; see DESIGN.md.
			for _, word := range splitWords(strings.ToLower(line[len("Keywords="):])) {
				app.Keywords = append(app.Keywords, models.Keyword{Word: word, Weight: keywordWeight})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	// Name tokens, then generic name and comment tokens. Insertion order
	// matters: search stops at the first matching keyword.
	for _, word := range splitWords(strings.ToLower(app.Name)) {
		app.Keywords = append(app.Keywords, models.Keyword{Word: word, Weight: nameWeight})
	}
	for _, word := range splitWords(strings.ToLower(app.GenericName + " " + app.Comment)) {
		app.Keywords = append(app.Keywords, models.Keyword{Word: word, Weight: commentWeight})
	}

	return app, nil
}

// splitWords splits on single spaces. Interior runs of spaces produce empty
// tokens, a trailing space does not, and an empty string produces nothing.
// Empty tokens never match a query but still occupy keyword positions,
// which feeds the rank term of the score.
func splitWords(s string) []string {
	if s == "" {
		return nil
	}
	words := strings.Split(s, " ")
	if words[len(words)-1] == "" {
		words = words[:len(words)-1]
	}
	return words
}
