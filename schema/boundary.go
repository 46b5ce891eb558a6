package schema

import (
	"encoding/json"
	"errors"
	"io"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	BoundaryDocumentCollection = "boundary_document"

	StatesLayer          = "states"
	districtsLayerPrefix = "districts:"
)

var ErrTrailingData = errors.New("unexpected data after boundary document")

// DistrictsLayer returns the layer key of the district boundaries of a normalized state name
func DistrictsLayer(state string) string {
	return districtsLayerPrefix + state
}

// BoundaryDocument is a parsed GeoJSON document. Content is never interpreted.
type BoundaryDocument struct {
	Layer   string
	Source  string
	Content interface{}
}

// BoundaryRecord is how a boundary document is kept in mongodb. Document is
// the JSON text of the file so any JSON value is kept as is.
type BoundaryRecord struct {
	Layer      string    `bson:"_id"`
	Source     string    `bson:"source"`
	ImportedAt time.Time `bson:"imported_at"`
	Document   string    `bson:"document"`
}

// NormalizeStateName lowercases a state name. Whitespace is kept as is.
func NormalizeStateName(name string) string {
	return cases.Lower(language.Und).String(name)
}

// DecodeBoundary parses exactly one JSON value from r. Numbers are kept as
// json.Number so they are written back unchanged.
func DecodeBoundary(r io.Reader) (interface{}, error) {
	var content interface{}

	decoder := json.NewDecoder(r)
	decoder.UseNumber()
	if err := decoder.Decode(&content); err != nil {
		return nil, err
	}

	if _, err := decoder.Token(); err != io.EOF {
		if err != nil {
			return nil, err
		}
		return nil, ErrTrailingData
	}

	return content, nil
}
