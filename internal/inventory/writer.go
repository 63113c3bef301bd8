package inventory

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
)

// AbsentMarker is written into cells whose subject has no file for the row.
const AbsentMarker = "DNE"

// PresentMarker is written into present cells under the "presence" style.
const PresentMarker = "present"

// CellStyle selects how present cells serialize.
type CellStyle int

const (
	// CellStylePath writes the relative file path (default).
	CellStylePath CellStyle = iota
	// CellStylePresence writes a fixed marker.
	CellStylePresence
)

// WriteTSV serializes the table to path as tab-separated values, creating
// the parent directory when absent. The write is guarded by a sibling
// <path>.lock flock so concurrent runs sharing an output location serialize
// instead of interleaving. Errors carry the attempted path.
func WriteTSV(table *Table, path string, style CellStyle) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory %q: %w", dir, err)
	}

	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("lock output %q: %w", path, err)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write inventory %q: %w", path, err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	if _, err := writer.WriteString(strings.Join(table.Header(), "\t") + "\n"); err != nil {
		return fmt.Errorf("write inventory %q: %w", path, err)
	}
	for _, row := range table.Rows() {
		fields := make([]string, 0, len(table.Subjects())+2)
		fields = append(fields, row.Label, row.Datatype)
		for _, subject := range table.Subjects() {
			fields = append(fields, renderCell(row.Cell(subject), style))
		}
		if _, err := writer.WriteString(strings.Join(fields, "\t") + "\n"); err != nil {
			return fmt.Errorf("write inventory %q: %w", path, err)
		}
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("write inventory %q: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("write inventory %q: %w", path, err)
	}
	return nil
}

func renderCell(cell Cell, style CellStyle) string {
	if !cell.Present {
		return AbsentMarker
	}
	if style == CellStylePresence {
		return PresentMarker
	}
	return cell.Path
}

// StyleFromConfig maps the config cell_style string onto a CellStyle.
func StyleFromConfig(value string) CellStyle {
	if value == "presence" {
		return CellStylePresence
	}
	return CellStylePath
}
