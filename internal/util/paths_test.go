package util

import (
	"path/filepath"
	"testing"
)

func TestDataDir_HonorsXDG(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/custom/data")
	if got := DataDir("ironlog"); got != filepath.Join("/custom/data", "ironlog") {
		t.Fatalf("unexpected data dir %q", got)
	}
}

func TestConfigDir_HonorsXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	if got := ConfigDir("ironlog"); got != filepath.Join("/custom/config", "ironlog") {
		t.Fatalf("unexpected config dir %q", got)
	}
}

func TestDocumentsDir_EnvOverride(t *testing.T) {
	t.Setenv("XDG_DOCUMENTS_DIR", "/custom/docs")
	if got := DocumentsDir(); got != "/custom/docs" {
		t.Fatalf("unexpected documents dir %q", got)
	}
}

func TestParseUserDir(t *testing.T) {
	data := `
# comment
XDG_DOWNLOAD_DIR="$HOME/Downloads"
XDG_DOCUMENTS_DIR="$HOME/Docs"
`
	if got := parseUserDir(data, "XDG_DOCUMENTS_DIR"); got != "$HOME/Docs" {
		t.Fatalf("unexpected parse result %q", got)
	}
	if got := parseUserDir(data, "XDG_MUSIC_DIR"); got != "" {
		t.Fatalf("expected empty for missing key, got %q", got)
	}
}
