// Package manifest reads project metadata from Cargo.toml.
package manifest

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Metadata identifies the project under analysis.
type Metadata struct {
	Name    string
	Version string
}

type cargoManifest struct {
	Package struct {
		Name    string `toml:"name"`
		Version string `toml:"version"`
	} `toml:"package"`
}

// Load reads Cargo.toml under the project root. A missing or malformed
// manifest is not fatal; unknown fields degrade to "unknown".
func Load(projectRoot string) Metadata {
	meta := Metadata{Name: "unknown", Version: "unknown"}

	data, err := os.ReadFile(filepath.Join(projectRoot, "Cargo.toml"))
	if err != nil {
		return meta
	}

	var m cargoManifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return meta
	}

	if m.Package.Name != "" {
		meta.Name = m.Package.Name
	}
	if m.Package.Version != "" {
		meta.Version = m.Package.Version
	}
	return meta
}
