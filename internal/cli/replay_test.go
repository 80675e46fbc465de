package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/phanxgames/pinchzoom"
)

const testPagesYAML = `pages:
  - id: 1
    image: magazine-front-cover
  - id: 2
    image: magazine-back-cover
`

const testScript = `{"steps": [
  {"action": "doubletap", "x": 200, "y": 200},
  {"action": "snapshot", "label": "zoomed"},
  {"action": "select", "page": 9},
  {"action": "select", "page": 2},
  {"action": "snapshot", "label": "second"}
]}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func testResult() pinchzoom.ScriptResult {
	return pinchzoom.ScriptResult{
		Snapshots: []pinchzoom.Snapshot{{
			Label: "zoomed",
			Frame: 12,
			State: pinchzoom.TransformState{Scale: 5, DrawerOpen: true, CurrentPageID: 1},
		}},
		Warnings: []string{"select page 9: invalid page id"},
		Frames:   20,
	}
}

func TestWriteResultFormats(t *testing.T) {
	tests := []struct {
		format string
		want   []string
	}{
		{"text", []string{"Snapshots", "zoomed", "5.00", "20 frames", "page 9"}},
		{"yaml", []string{"label: zoomed", "scale: 5", "drawer_open: true", "frames: 20"}},
		{"json", []string{`"label": "zoomed"`, `"currentPageId": 1`}},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			if err := writeResult(&buf, testResult(), tt.format); err != nil {
				t.Fatalf("writeResult: %v", err)
			}
			for _, w := range tt.want {
				if !strings.Contains(buf.String(), w) {
					t.Errorf("output missing %q:\n%s", w, buf.String())
				}
			}
		})
	}
}

func TestWriteResultUnknownFormat(t *testing.T) {
	if err := writeResult(&bytes.Buffer{}, testResult(), "xml"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestNewControllerFromFiles(t *testing.T) {
	t.Setenv(envPages, "")
	t.Setenv(envConfig, "")
	dir := t.TempDir()
	flags := sessionFlags{
		pages:  writeFile(t, dir, "pages.yaml", testPagesYAML),
		config: writeFile(t, dir, "config.toml", "max_scale = 8\ntap_scale = 8\n"),
	}

	ctrl, err := flags.newController(log.New(&bytes.Buffer{}))
	if err != nil {
		t.Fatalf("newController: %v", err)
	}
	if ctrl.Pages().Len() != 2 || ctrl.Config().MaxScale != 8 {
		t.Errorf("pages %d max %v, want 2 and 8", ctrl.Pages().Len(), ctrl.Config().MaxScale)
	}
}

func TestNewControllerErrors(t *testing.T) {
	t.Setenv(envPages, "")
	t.Setenv(envConfig, "")
	dir := t.TempDir()
	pages := writeFile(t, dir, "pages.yaml", testPagesYAML)

	tests := []struct {
		name  string
		flags sessionFlags
	}{
		{"missing pages", sessionFlags{pages: filepath.Join(dir, "none.yaml")}},
		{"empty pages", sessionFlags{pages: writeFile(t, dir, "empty.yaml", "pages: []")}},
		{"missing config", sessionFlags{pages: pages, config: filepath.Join(dir, "none.toml")}},
		{"invalid config", sessionFlags{pages: pages, config: writeFile(t, dir, "bad.toml", "tap_count = 0")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.flags.newController(log.New(&bytes.Buffer{})); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestReplayCommand(t *testing.T) {
	t.Setenv(envPages, "")
	t.Setenv(envConfig, "")
	dir := t.TempDir()
	pages := writeFile(t, dir, "pages.yaml", testPagesYAML)
	script := writeFile(t, dir, "script.json", testScript)

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"replay", script, "--pages", pages, "--format", "json"})
	if err := root.Execute(); err != nil {
		t.Fatalf("replay: %v", err)
	}

	var res pinchzoom.ScriptResult
	if err := json.Unmarshal(out.Bytes(), &res); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out.String())
	}
	if len(res.Snapshots) != 2 {
		t.Fatalf("got %d snapshots, want 2", len(res.Snapshots))
	}
	if got := res.Snapshots[0].State.Scale; got != 5 {
		t.Errorf("zoomed scale = %v, want 5", got)
	}
	if got := res.Snapshots[1].State.CurrentPageID; got != 2 {
		t.Errorf("second page = %d, want 2", got)
	}
	if len(res.Warnings) != 1 {
		t.Errorf("warnings = %v, want one for page 9", res.Warnings)
	}
}
