package metadata

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/gowebpki/jcs"
	"github.com/mandelsoft/vfs/pkg/osfs"
	"github.com/mandelsoft/vfs/pkg/vfs"
	"sigs.k8s.io/yaml"

	"github.com/mandelsoft/drivebind/pkg/utils"
)

// Parse decodes and validates a YAML or JSON metadata document.
func Parse(data []byte) (*Model, error) {
	var m Model

	err := yaml.UnmarshalStrict(data, &m)
	if err != nil {
		return nil, fmt.Errorf("invalid metadata: %w", err)
	}
	err = Validate(&m)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Load reads a metadata file from the given filesystem (default is
// the OS filesystem).
func Load(path string, fss ...vfs.FileSystem) (*Model, error) {
	fs := utils.OptionalDefaulted(vfs.FileSystem(osfs.OsFs), fss...)

	data, err := vfs.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Debug("loaded metadata {{name}} from {{path}} with {{amount}} types", "name", m.Name, "path", path, "amount", len(m.Types))
	return m, nil
}

// Digest returns a hash of the canonical JSON form of the model.
// It changes whenever any type, ancestor or property description
// changes and is used to detect stale generated bindings.
func Digest(m *Model) (string, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return "", err
	}
	data, err = jcs.Transform(data)
	if err != nil {
		return "", err
	}
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:]), nil
}
