package seed

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"

	"github.com/dtroode/tablemarket-server/internal/model"
)

//go:embed restaurants.json
var embeddedRestaurants []byte

// Source loads restaurant reference data.
type Source interface {
	Load(ctx context.Context) ([]model.Restaurant, error)
}

// EmbeddedSource serves the restaurant list compiled into the binary.
type EmbeddedSource struct{}

// NewEmbeddedSource creates a source backed by the bundled restaurant list.
func NewEmbeddedSource() *EmbeddedSource {
	return &EmbeddedSource{}
}

// Load decodes the bundled restaurant list.
func (s *EmbeddedSource) Load(_ context.Context) ([]model.Restaurant, error) {
	return decode(bytes.NewReader(embeddedRestaurants))
}

// ObjectSource reads the restaurant list from an object store.
type ObjectSource struct {
	storage model.Storage
	key     string
}

// NewObjectSource creates a source reading the JSON document stored under key.
func NewObjectSource(storage model.Storage, key string) *ObjectSource {
	return &ObjectSource{storage: storage, key: key}
}

// Load downloads and decodes the restaurant list.
func (s *ObjectSource) Load(ctx context.Context) ([]model.Restaurant, error) {
	exists, err := s.storage.Exists(ctx, s.key)
	if err != nil {
		return nil, fmt.Errorf("failed to check seed object: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("seed object %q: %w", s.key, model.ErrNotFound)
	}

	rc, err := s.storage.Download(ctx, s.key)
	if err != nil {
		return nil, fmt.Errorf("failed to download seed object: %w", err)
	}
	defer rc.Close()

	return decode(rc)
}

func decode(r io.Reader) ([]model.Restaurant, error) {
	var restaurants []model.Restaurant
	if err := json.NewDecoder(r).Decode(&restaurants); err != nil {
		return nil, fmt.Errorf("failed to decode restaurants: %w", err)
	}

	for i, rest := range restaurants {
		if err := validate(rest); err != nil {
			return nil, fmt.Errorf("restaurant #%d: %w", i, err)
		}
	}

	return restaurants, nil
}

func validate(r model.Restaurant) error {
	fields := []struct {
		name  string
		value string
	}{
		{"name", r.Name},
		{"cuisine", r.Cuisine},
		{"url", r.URL},
		{"image_url", r.ImageURL},
		{"address", r.Address},
		{"phone", r.Phone},
	}
	for _, f := range fields {
		if f.value == "" {
			return fmt.Errorf("missing %s", f.name)
		}
	}
	return nil
}
