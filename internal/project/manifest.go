package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ManifestName is the file the toolchain looks for at a project root.
const ManifestName = "uscl.toml"

var (
	// ErrPackageSectionMissing indicates that [package] is missing.
	ErrPackageSectionMissing = errors.New("missing [package]")
	// ErrPackageNameMissing indicates that [package].name is missing.
	ErrPackageNameMissing = errors.New("missing [package].name")
	// ErrManifestNotFound indicates no uscl.toml up the directory tree.
	ErrManifestNotFound = errors.New("no uscl.toml found")
)

// Manifest describes a project's uscl.toml.
type Manifest struct {
	Package  PackageSection  `toml:"package"`
	Tokenize TokenizeSection `toml:"tokenize"`
}

// PackageSection is the required [package] table.
type PackageSection struct {
	Name string `toml:"name"`
	Root string `toml:"root"`
}

// TokenizeSection holds tokenizer defaults the CLI applies when flags are
// left unset.
type TokenizeSection struct {
	MaxDiagnostics int `toml:"max-diagnostics"`
	Jobs           int `toml:"jobs"`
}

// LoadManifest parses a uscl.toml file and validates the [package] section.
func LoadManifest(path string) (Manifest, error) {
	var m Manifest
	meta, err := toml.DecodeFile(path, &m)
	if err != nil {
		return Manifest{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return Manifest{}, fmt.Errorf("%s: %w", path, ErrPackageSectionMissing)
	}
	if strings.TrimSpace(m.Package.Name) == "" {
		return Manifest{}, fmt.Errorf("%s: %w", path, ErrPackageNameMissing)
	}
	if m.Package.Root == "" {
		m.Package.Root = "."
	}
	if m.Tokenize.MaxDiagnostics <= 0 {
		m.Tokenize.MaxDiagnostics = 100
	}
	return m, nil
}

// FindManifest walks from dir upward looking for uscl.toml and returns its
// path.
func FindManifest(dir string) (string, error) {
	cur, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		candidate := filepath.Join(cur, ManifestName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			return "", fmt.Errorf("%s: %w", dir, ErrManifestNotFound)
		}
		cur = parent
	}
}

// SourceRoot resolves the directory that holds the project's .ul sources.
func (m Manifest) SourceRoot(manifestPath string) string {
	return filepath.Join(filepath.Dir(manifestPath), m.Package.Root)
}
