package arcfile

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
)

// Bundle member names.
const (
	BundleScene = "scene.json"
	BundleMacro = "scene.macro"
)

// ErrNoScene is returned when a bundle holds neither scene.json nor
// scene.macro.
var ErrNoScene = errors.New("arcfile: bundle contains no scene")

// WriteBundleFile writes s to a .arcs file.
func WriteBundleFile(path string, s *Scene) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteBundle(file, s); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// WriteBundle writes s in .arcs format.
func WriteBundle(w io.Writer, s *Scene) error {
	zw := zip.NewWriter(w)

	data, err := ToJSON(s, true)
	if err != nil {
		return fmt.Errorf("encoding scene: %w", err)
	}
	jw, err := zw.Create(BundleScene)
	if err != nil {
		return err
	}
	if _, err := jw.Write(data); err != nil {
		return err
	}

	mw, err := zw.Create(BundleMacro)
	if err != nil {
		return err
	}
	if err := WriteMacro(mw, s); err != nil {
		return err
	}

	return zw.Close()
}

// ReadBundleFile reads a scene from a .arcs file.
func ReadBundleFile(path string) (*Scene, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, err
	}

	return ReadBundle(file, info.Size())
}

// ReadBundle reads a scene from a reader containing .arcs format.
// scene.json is preferred; scene.macro is used when it is missing.
func ReadBundle(r io.ReaderAt, size int64) (*Scene, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("opening bundle: %w", err)
	}

	var jsonData, macroData []byte
	for _, f := range zr.File {
		if f.Name != BundleScene && f.Name != BundleMacro {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, err
		}
		if f.Name == BundleScene {
			jsonData = data
		} else {
			macroData = data
		}
	}

	switch {
	case jsonData != nil:
		return ParseJSON(jsonData)
	case macroData != nil:
		Logger().Info("arcfile: bundle has no scene.json, replaying macro")
		return ReadMacro(bytes.NewReader(macroData))
	}
	return nil, ErrNoScene
}

// ReadBundleBytes reads a scene from bytes in .arcs format.
func ReadBundleBytes(data []byte) (*Scene, error) {
	return ReadBundle(bytes.NewReader(data), int64(len(data)))
}
