package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ha1tch/curlyarc-toolkit/pkg/arcfile"
)

func fileExt(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

// loadScene reads a scene, choosing the format by extension.
func loadScene(path string) (*arcfile.Scene, error) {
	switch fileExt(path) {
	case ".arcs":
		return arcfile.ReadBundleFile(path)
	case ".json":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return arcfile.ParseJSON(data)
	case ".macro", ".c":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return arcfile.ReadMacro(f)
	default:
		return nil, fmt.Errorf("unknown file format: %s", filepath.Ext(path))
	}
}

// saveScene writes a scene, choosing the format by extension.
func saveScene(path string, s *arcfile.Scene, pretty bool) error {
	switch fileExt(path) {
	case ".arcs":
		return arcfile.WriteBundleFile(path, s)
	case ".json":
		data, err := arcfile.ToJSON(s, pretty)
		if err != nil {
			return err
		}
		return os.WriteFile(path, data, 0644)
	case ".macro", ".c":
		var buf bytes.Buffer
		if err := arcfile.WriteMacro(&buf, s); err != nil {
			return err
		}
		return os.WriteFile(path, buf.Bytes(), 0644)
	default:
		return fmt.Errorf("unknown output format: %s", filepath.Ext(path))
	}
}

// convertTarget picks the default conversion output: bundles become JSON,
// everything else becomes a bundle.
func convertTarget(input string) string {
	ext := filepath.Ext(input)
	base := strings.TrimSuffix(input, ext)
	if strings.EqualFold(ext, ".arcs") {
		return base + ".json"
	}
	return base + ".arcs"
}
