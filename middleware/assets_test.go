package middleware

import (
	"os"
	"path/filepath"
	"testing"
)

func TestComputeFileHash(t *testing.T) {
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "site.css")
	if err := os.WriteFile(tmpFile, []byte("body { color: red; }"), 0644); err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}

	hash := computeFileHash(tmpFile)
	if len(hash) != 8 {
		t.Errorf("expected 8 character hash, got %q", hash)
	}
	if again := computeFileHash(tmpFile); again != hash {
		t.Errorf("hash is not stable: %s != %s", hash, again)
	}

	if hash := computeFileHash(filepath.Join(tmpDir, "missing.css")); hash != "" {
		t.Errorf("expected empty hash for non-existent file, got %s", hash)
	}
}

func TestComputeAssetVersions(t *testing.T) {
	tmpDir := t.TempDir()
	os.MkdirAll(filepath.Join(tmpDir, "css"), 0755)
	os.WriteFile(filepath.Join(tmpDir, "css", "site.css"), []byte("css"), 0644)

	versions := computeAssetVersions(tmpDir, []string{"css/site.css", "js/site.js"})

	if _, ok := versions["css/site.css"]; !ok {
		t.Error("expected a version for css/site.css")
	}
	if _, ok := versions["js/site.js"]; ok {
		t.Error("missing files must not get a version")
	}
}

func TestAssetVersionDefault(t *testing.T) {
	if v := AssetVersion("images/does-not-exist.png"); v != "1" {
		t.Errorf("expected default version '1', got %s", v)
	}
}
