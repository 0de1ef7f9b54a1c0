package exportsvc

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/Arescoreadmin/ares-core/internal/entrylog"
)

// Artifact formats
const (
	FormatCSV  = "csv"
	FormatText = "text"
)

// textPageSize is the number of entries per page in the text rendering.
const textPageSize = 50

// renderCSV renders entries with the fixed header
// timestamp,level,service,message,hash and \n line termination, so the same
// snapshot produces identical bytes on every platform.
func renderCSV(entries []entrylog.Entry) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	// encoding/csv terminates records with \n unless UseCRLF is set.
	if err := w.Write([]string{"timestamp", "level", "service", "message", "hash"}); err != nil {
		return nil, err
	}
	for _, e := range entries {
		rec := []string{
			e.Timestamp.UTC().Format(time.RFC3339Nano),
			e.Level,
			e.Service,
			e.Message,
			e.Hash,
		}
		if err := w.Write(rec); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// renderText renders entries as paginated line-delimited text.
func renderText(entries []entrylog.Entry) ([]byte, error) {
	var buf bytes.Buffer
	pages := (len(entries) + textPageSize - 1) / textPageSize
	if pages == 0 {
		pages = 1
	}
	for p := 0; p < pages; p++ {
		fmt.Fprintf(&buf, "== log report page %d/%d ==\n", p+1, pages)
		lo := p * textPageSize
		hi := lo + textPageSize
		if hi > len(entries) {
			hi = len(entries)
		}
		for _, e := range entries[lo:hi] {
			fmt.Fprintf(&buf, "%s [%s] %s: %s (%s)\n",
				e.Timestamp.UTC().Format(time.RFC3339Nano), e.Level, e.Service, e.Message, e.Hash)
		}
	}
	return buf.Bytes(), nil
}
