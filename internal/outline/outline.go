package outline

import (
	"fmt"
	"os"
	"path/filepath"
)

// Path returns the manifest path under a project root.
func Path(root string) string {
	return filepath.Join(root, FileName)
}

// Read loads and decodes the manifest under root. Decode failures come back
// wrapping the *DecodeError. A package outline is returned as soon as it
// decodes; an application outline additionally has every declared source
// directory checked for existence relative to root. Unlike decoding, that
// check does not stop at the first failure: all missing directories are
// collected into one *BadSourceDirsError, in declared order.
func Read(root string) (Outline, error) {
	path := Path(root)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	o, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	app, ok := o.(*AppOutline)
	if !ok {
		return o, nil
	}
	var missing []string
	for _, dir := range app.SourceDirs.All() {
		full := dir
		if !filepath.IsAbs(full) {
			full = filepath.Join(root, dir)
		}
		info, err := os.Stat(full)
		if err != nil || !info.IsDir() {
			missing = append(missing, dir)
		}
	}
	if len(missing) > 0 {
		return nil, &BadSourceDirsError{Missing: missing}
	}
	return app, nil
}

// Write encodes o and writes it to the manifest path under root. No
// validation happens here; the caller owns the outline's consistency.
func Write(root string, o Outline) error {
	path := Path(root)
	if err := os.WriteFile(path, Encode(o), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
