package export

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/moviegraph/moviegraph/internal/apperr"
	"github.com/moviegraph/moviegraph/internal/movie"
)

// Writer serializes graph documents under a fixed export directory.
type Writer struct {
	Dir string
}

func NewWriter(dir string) *Writer {
	return &Writer{Dir: dir}
}

// Filename returns the stable export filename for a movie title. Repeated
// exports of the same movie overwrite the same file.
func (w *Writer) Filename(title string) string {
	return MovieID(title) + ".json"
}

// Write builds the graph document for rec and writes it as indented JSON,
// creating the export directory if absent. It returns the written path.
func (w *Writer) Write(rec *movie.DetailRecord) (string, error) {
	doc := BuildGraph(rec)

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", apperr.Wrap(apperr.CodeIO, err, "could not encode graph document")
	}
	data = append(data, '\n')

	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return "", apperr.Wrap(apperr.CodeIO, err, "could not create export directory %s", w.Dir)
	}

	path := filepath.Join(w.Dir, w.Filename(rec.Movie.Title))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", apperr.Wrap(apperr.CodeIO, err, "could not write %s", path)
	}

	return path, nil
}
