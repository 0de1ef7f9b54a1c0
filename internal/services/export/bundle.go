package exportsvc

import (
	"archive/tar"
	"bytes"
	"time"

	"github.com/klauspost/compress/gzip"
)

// Manifest is the bundle's metadata member: when the bundle was created and
// which files it contains.
type Manifest struct {
	Version   string    `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	Files     []string  `json:"files"`
}

type memberFile struct {
	name string
	data []byte
}

// buildBundle packs the members into a deterministic tar.gz: fixed file
// modes, member mtimes pinned to createdAt, insertion order preserved.
func buildBundle(members []memberFile, createdAt time.Time) ([]byte, error) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gz)
	for _, m := range members {
		hdr := &tar.Header{
			Name:    m.name,
			Mode:    0o644,
			Size:    int64(len(m.data)),
			ModTime: createdAt.UTC(),
		}
		if err := tw.WriteHeader(hdr); err != nil {
			return nil, err
		}
		if _, err := tw.Write(m.data); err != nil {
			return nil, err
		}
	}
	if err := tw.Close(); err != nil {
		return nil, err
	}
	if err := gz.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
