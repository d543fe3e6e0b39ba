// Package usage persists per-application launch counts and style overrides
// in a single line-oriented config file.
package usage

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"launchbox/internal/models"

	"github.com/gofrs/flock"
)

// Store reads and rewrites the launcher config file. The file holds two
// kinds of key=value lines: style attribute overrides and launch counts
// keyed by descriptor path. A key is classified by whether it contains a
// path separator, so the section headers are cosmetic.
type Store struct {
	path string
}

// New creates a Store for the given config file path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the config file path.
func (s *Store) Path() string {
	return s.path
}

// Load overlays persisted launch counts onto the catalog and returns the
// style override map (defaults plus any overrides). A missing file is not
// an error. Unparseable lines are skipped; loading never aborts halfway.
func (s *Store) Load(catalog models.Catalog) (map[string]string, error) {
	style := models.DefaultStyle()

	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return style, nil
		}
		return style, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		i := strings.LastIndex(line, "=")
		if i < 0 {
			continue
		}
		key, val := line[:i], line[i+1:]
		if !strings.Contains(key, "/") {
			if models.IsStyleAttribute(key) {
				style[key] = val
			}
			continue
		}
		app := catalog.ByID(key)
		if app == nil {
			continue
		}
		count, err := strconv.Atoi(val)
		if err != nil {
			continue
		}
		app.LaunchCount = count
	}
	if err := scanner.Err(); err != nil {
		return style, err
	}

	return style, nil
}

// Save rewrites the whole config file: non-default style attributes first,
// then every application with a positive launch count, in catalog order.
// The rewrite is guarded by a lock file so two launcher instances cannot
// interleave writes. Failures propagate to the caller.
func (s *Store) Save(catalog models.Catalog, style map[string]string) error {
	lock := flock.New(s.path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("locking %s: %w", s.path, err)
	}
	defer lock.Unlock()

	defaults := models.DefaultStyle()
	var b strings.Builder

	b.WriteString("[Style]\n")
	for _, attr := range models.StyleAttributes {
		if style[attr] != defaults[attr] {
			fmt.Fprintf(&b, "%s=%s\n", attr, style[attr])
		}
	}

	b.WriteString("\n[Application Launch Counts]\n")
	for _, app := range catalog {
		if app.LaunchCount > 0 {
			fmt.Fprintf(&b, "%s=%d\n", app.ID, app.LaunchCount)
		}
	}

	if err := os.WriteFile(s.path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", s.path, err)
	}
	return nil
}
