// Package dataset loads showings datasets into memory. A dataset is read
// once, fully, and handed to the ranking as a plain slice of movies.
package dataset

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/paologalligit/seatrank/entities"
	"github.com/paologalligit/seatrank/team"
	"gopkg.in/yaml.v3"
)

var ErrUnsupportedFormat = errors.New("unsupported dataset format")

// Source is anything that can produce the movies of a dataset.
type Source interface {
	Load(ctx context.Context) ([]entities.Movie, error)
}

// FileSource reads a showings file. The format follows the extension:
// .json for JSON, .yaml/.yml for YAML.
type FileSource struct {
	Path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

func (f *FileSource) Load(ctx context.Context) ([]entities.Movie, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", f.Path, err)
	}
	movies, err := Decode(data, filepath.Ext(f.Path))
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", f.Path, err)
	}
	return movies, nil
}

// Decode parses a showings document. ext selects the decoder and includes
// the leading dot.
func Decode(data []byte, ext string) ([]entities.Movie, error) {
	movies := []entities.Movie{}
	switch strings.ToLower(ext) {
	case ".json":
		if len(bytes.TrimSpace(data)) == 0 {
			return movies, nil
		}
		if err := json.Unmarshal(data, &movies); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &movies); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if movies == nil {
		movies = []entities.Movie{}
	}
	return movies, nil
}

// LoadFiles loads every path with up to workers files read at once and
// concatenates the movies in path order. Any failing file fails the load.
func LoadFiles(ctx context.Context, paths []string, workers int) ([]entities.Movie, error) {
	loaders := team.Team[string, []entities.Movie]{
		WorkerCount: workers,
		Worker: func(ctx context.Context, path string) ([]entities.Movie, error) {
			return NewFileSource(path).Load(ctx)
		},
	}
	perFile, err := loaders.Run(ctx, paths)
	if err != nil {
		return nil, err
	}
	movies := []entities.Movie{}
	for _, m := range perFile {
		movies = append(movies, m...)
	}
	return movies, nil
}

// MultiFileSource loads several showings files as one dataset.
type MultiFileSource struct {
	Paths   []string
	Workers int
}

func (m *MultiFileSource) Load(ctx context.Context) ([]entities.Movie, error) {
	return LoadFiles(ctx, m.Paths, m.Workers)
}
