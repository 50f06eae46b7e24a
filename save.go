package inkpad

import (
	"fmt"
	"os"
	"path/filepath"
)

// File name bases for saved artifacts; the extension comes from the
// artifact's format.
const (
	BaseDrawn = "signature"
	BaseTyped = "typed-signature"
)

// Saver hands an encoded artifact to the surrounding file-save collaborator
// (a browser download in the original environment, a local file write here).
type Saver interface {
	// Save stores the artifact under base + "." + a.Ext.
	Save(base string, a Artifact) error
}

// DirSaver saves artifacts as files in a directory.
type DirSaver struct {
	// Dir is the target directory. Empty means the current directory.
	Dir string
}

// Save writes the artifact to Dir/base.ext. Failures are logged and
// returned; they do not alter any drawing or exporter state.
func (d DirSaver) Save(base string, a Artifact) error {
	name := filepath.Join(d.Dir, base+"."+a.Ext)
	if err := os.WriteFile(name, a.Data, 0o644); err != nil {
		logger().Warn("save failed", "file", name, "err", err)
		return fmt.Errorf("save %s: %w", name, err)
	}
	logger().Info("saved artifact", "file", name, "bytes", len(a.Data), "bestEffort", a.BestEffort)
	return nil
}
