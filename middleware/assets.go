package middleware

import (
	"crypto/md5"
	"encoding/hex"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// TrackedAssets are the static files whose hash is appended for cache busting
var TrackedAssets = []string{
	"css/site.css",
	"js/site.js",
	"images/favicon.png",
	"images/logo.jpeg",
	"images/ceo.jpeg",
	"images/team.jpeg",
}

var (
	assetVersions     map[string]string
	assetVersionsMu   sync.RWMutex
	assetVersionsOnce sync.Once
)

// InitAssetVersions computes file hashes for cache busting at startup
func InitAssetVersions(staticDir string) {
	assetVersionsOnce.Do(func() {
		versions := computeAssetVersions(staticDir, TrackedAssets)
		assetVersionsMu.Lock()
		assetVersions = versions
		assetVersionsMu.Unlock()
		log.Printf("[INFO] Asset versions initialized: %d files", len(versions))
	})
}

func computeAssetVersions(staticDir string, assets []string) map[string]string {
	versions := make(map[string]string, len(assets))
	for _, asset := range assets {
		if version := computeFileHash(filepath.Join(staticDir, filepath.FromSlash(asset))); version != "" {
			versions[asset] = version
		}
	}
	return versions
}

// computeFileHash returns the first 8 characters of the MD5 hash of a file
func computeFileHash(path string) string {
	file, err := os.Open(path)
	if err != nil {
		log.Printf("[WARNING] Failed to open file for hashing %s: %v", path, err)
		return ""
	}
	defer file.Close()

	hash := md5.New()
	if _, err := io.Copy(hash, file); err != nil {
		log.Printf("[WARNING] Failed to hash file %s: %v", path, err)
		return ""
	}

	return hex.EncodeToString(hash.Sum(nil))[:8]
}

// AssetVersion returns the version hash for a static asset, or "1" when unknown
func AssetVersion(asset string) string {
	assetVersionsMu.RLock()
	defer assetVersionsMu.RUnlock()
	if version, ok := assetVersions[asset]; ok {
		return version
	}
	return "1"
}
