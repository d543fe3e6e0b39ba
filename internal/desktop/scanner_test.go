package desktop

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"launchbox/internal/models"
)

func writeDescriptor(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestScanParsesFields(t *testing.T) {
	dir := t.TempDir()
	path := writeDescriptor(t, dir, "firefox.desktop",
		"[Desktop Entry]\n"+
			"Name=Firefox\n"+
			"GenericName=Web Browser\n"+
			"Comment=Browse the Web\n"+
			"Exec=firefox %u\n")

	catalog := New(dir).Scan()
	if len(catalog) != 1 {
		t.Fatalf("Expected 1 application, got %d", len(catalog))
	}

	app := catalog[0]
	if app.ID != path {
		t.Errorf("Expected id %s, got %s", path, app.ID)
	}
	if app.Name != "Firefox" {
		t.Errorf("Expected name Firefox, got %q", app.Name)
	}
	if app.GenericName != "Web Browser" {
		t.Errorf("Expected generic name Web Browser, got %q", app.GenericName)
	}
	if app.Comment != "Browse the Web" {
		t.Errorf("Expected comment Browse the Web, got %q", app.Comment)
	}
	if app.CommandLine != "firefox %u" {
		t.Errorf("Expected command firefox %%u, got %q", app.CommandLine)
	}
}

func TestScanKeywordOrderAndWeights(t *testing.T) {
	dir := t.TempDir()
	writeDescriptor(t, dir, "firefox.desktop",
		"Name=Firefox\n"+
			"GenericName=Web Browser\n"+
			"Keywords=Internet WWW\n"+
			"Exec=firefox\n")

	catalog := New(dir).Scan()
	app := catalog[0]

	// Keywords= tokens first (weight 1), then name tokens (weight 1000),
	// then generic name + comment tokens (weight 1).
	want := []models.Keyword{
		{Word: "internet", Weight: 1},
		{Word: "www", Weight: 1},
		{Word: "firefox", Weight: 1000},
		{Word: "web", Weight: 1},
		{Word: "browser", Weight: 1},
	}
	if !reflect.DeepEqual(app.Keywords, want) {
		t.Errorf("Keyword sequence mismatch:\n got %v\nwant %v", app.Keywords, want)
	}
}

func TestScanKeywordsSkippedAfterExec(t *testing.T) {
	dir := t.TempDir()
	writeDescriptor(t, dir, "app.desktop",
		"Name=App\n"+
			"Exec=app\n"+
			"Keywords=ignored tokens\n")

	catalog := New(dir).Scan()
	app := catalog[0]

	for _, kw := range app.Keywords {
		if kw.Word == "ignored" || kw.Word == "tokens" {
			t.Errorf("Keywords= after Exec= should not be indexed, found %q", kw.Word)
		}
	}
}

func TestScanFirstOccurrenceWins(t *testing.T) {
	dir := t.TempDir()
	writeDescriptor(t, dir, "app.desktop",
		"Name=First\n"+
			"Name=Second\n"+
			"Exec=first\n"+
			"Exec=second\n")

	catalog := New(dir).Scan()
	app := catalog[0]
	if app.Name != "First" {
		t.Errorf("First Name= should win, got %q", app.Name)
	}
	if app.CommandLine != "first" {
		t.Errorf("First Exec= should win, got %q", app.CommandLine)
	}
}

func TestScanEmptyExecIgnored(t *testing.T) {
	dir := t.TempDir()
	writeDescriptor(t, dir, "app.desktop",
		"Name=App\n"+
			"Exec=\n"+
			"Keywords=still indexed\n"+
			"Exec=app\n")

	catalog := New(dir).Scan()
	app := catalog[0]
	if app.CommandLine != "app" {
		t.Errorf("Empty Exec= should be skipped, got command %q", app.CommandLine)
	}
	if len(app.Keywords) == 0 || app.Keywords[0].Word != "still" {
		t.Error("Keywords before the first non-empty Exec= should be indexed")
	}
}

func TestScanMalformedFileStillIndexed(t *testing.T) {
	dir := t.TempDir()
	writeDescriptor(t, dir, "broken.desktop", "not a descriptor at all\n")

	catalog := New(dir).Scan()
	if len(catalog) != 1 {
		t.Fatalf("Malformed file should still produce an entry, got %d", len(catalog))
	}
	if catalog[0].Name != "" {
		t.Errorf("Expected empty name, got %q", catalog[0].Name)
	}
}

func TestScanMissingDirSkipped(t *testing.T) {
	dir := t.TempDir()
	writeDescriptor(t, dir, "app.desktop", "Name=App\nExec=app\n")

	catalog := New("/nonexistent/applications", dir).Scan()
	if len(catalog) != 1 {
		t.Errorf("Missing dir should be skipped, got %d entries", len(catalog))
	}
}

func TestScanSubdirectoriesSkipped(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0755); err != nil {
		t.Fatal(err)
	}
	writeDescriptor(t, dir, "app.desktop", "Name=App\nExec=app\n")

	catalog := New(dir).Scan()
	if len(catalog) != 1 {
		t.Errorf("Subdirectories should not be indexed, got %d entries", len(catalog))
	}
}

func TestScanDuplicateDirLastWins(t *testing.T) {
	dir := t.TempDir()
	writeDescriptor(t, dir, "app.desktop", "Name=App\nExec=app\n")

	catalog := New(dir, dir).Scan()
	if len(catalog) != 1 {
		t.Errorf("Duplicate ids should collapse to one entry, got %d", len(catalog))
	}
}

func TestScanDirOrderPreserved(t *testing.T) {
	a := t.TempDir()
	b := t.TempDir()
	writeDescriptor(t, a, "one.desktop", "Name=One\nExec=one\n")
	writeDescriptor(t, b, "two.desktop", "Name=Two\nExec=two\n")

	catalog := New(a, b).Scan()
	if len(catalog) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(catalog))
	}
	if catalog[0].Name != "One" || catalog[1].Name != "Two" {
		t.Error("Catalog should preserve directory scan order")
	}
}

func TestSplitWords(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"one", []string{"one"}},
		{"one two", []string{"one", "two"}},
		{" two", []string{"", "two"}},
		{"one ", []string{"one"}},
		{"one  two", []string{"one", "", "two"}},
		{" ", []string{""}},
	}

	for _, tt := range tests {
		got := splitWords(tt.in)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("splitWords(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestScanEmptyGenericNameYieldsEmptyToken(t *testing.T) {
	dir := t.TempDir()
	writeDescriptor(t, dir, "app.desktop",
		"Name=App\n"+
			"Comment=Does things\n"+
			"Exec=app\n")

	catalog := New(dir).Scan()
	app := catalog[0]

	// genericName + " " + comment with an empty generic name starts with
	// a space, so the first description token is empty. It occupies a
	// keyword position but can never match a query.
	want := []models.Keyword{
		{Word: "app", Weight: 1000},
		{Word: "", Weight: 1},
		{Word: "does", Weight: 1},
		{Word: "things", Weight: 1},
	}
	if !reflect.DeepEqual(app.Keywords, want) {
		t.Errorf("Keyword sequence mismatch:\n got %v\nwant %v", app.Keywords, want)
	}
}
