package moddata

import (
	"bytes"
	"fmt"

	"pot-portal/feature/moddata/models"

	"github.com/klauspost/compress/zip"
)

// ArchiveEntries lists the files inside an exported zip blob.
func ArchiveEntries(blob []byte) (models.ArchiveEntries, error) {
	r, err := zip.NewReader(bytes.NewReader(blob), int64(len(blob)))
	if err != nil {
		return nil, fmt.Errorf("invalid export archive: %w", err)
	}

	entries := make(models.ArchiveEntries, 0, len(r.File))
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		entries = append(entries, models.ArchiveEntry{Name: f.Name, Size: f.UncompressedSize64})
	}
	return entries, nil
}
