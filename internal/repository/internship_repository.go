package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fadilmartias/intern-coach/internal/model"
	"github.com/google/uuid"
)

// ErrNotFound is returned when an update targets an id that is not in the store.
var ErrNotFound = errors.New("internship not found")

// InternshipRepository persists the whole collection as one pretty-printed
// JSON array file. Every operation is a full read-modify-write cycle; mu
// serializes those cycles so concurrent mutations cannot overwrite each
// other's file writes.
type InternshipRepository struct {
	mu   sync.Mutex
	path string
}

// NewInternshipRepository ensures the data directory exists and creates an
// empty store file on first run.
func NewInternshipRepository(path string) (*InternshipRepository, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data directory: %w", err)
		}
	}
	r := &InternshipRepository{path: path}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := r.save([]model.Internship{}); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, fmt.Errorf("stat store file: %w", err)
	}
	return r, nil
}

// List returns the full collection exactly as stored. A missing file is
// healed into an empty store; a corrupt existing file is surfaced as an
// error, never swallowed.
func (r *InternshipRepository) List() ([]model.Internship, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

// Create assigns a fresh id and creation timestamp, appends the record and
// persists the collection.
func (r *InternshipRepository) Create(rec model.Internship) (model.Internship, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	internships, err := r.load()
	if err != nil {
		return model.Internship{}, err
	}

	rec.ID = uuid.NewString()
	rec.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	internships = append(internships, rec)

	if err := r.save(internships); err != nil {
		return model.Internship{}, err
	}
	return rec, nil
}

// Update merges changes into the record with the given id via the supplied
// merge function and persists the collection. Returns ErrNotFound when the
// id is absent; the file is left untouched in that case.
func (r *InternshipRepository) Update(id string, merge func(*model.Internship)) (model.Internship, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	internships, err := r.load()
	if err != nil {
		return model.Internship{}, err
	}

	idx := -1
	for i := range internships {
		if internships[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return model.Internship{}, ErrNotFound
	}

	merge(&internships[idx])
	// Identity stays server-owned even if the merge touched it.
	internships[idx].ID = id

	if err := r.save(internships); err != nil {
		return model.Internship{}, err
	}
	return internships[idx], nil
}

// Delete removes the record with the given id. Deleting an absent id is a
// no-op that still succeeds.
func (r *InternshipRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	internships, err := r.load()
	if err != nil {
		return err
	}

	kept := internships[:0]
	for _, rec := range internships {
		if rec.ID != id {
			kept = append(kept, rec)
		}
	}
	return r.save(kept)
}

// Clear replaces the collection with an empty one, whatever its prior size.
func (r *InternshipRepository) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.save([]model.Internship{})
}

func (r *InternshipRepository) load() ([]model.Internship, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		if err := r.save([]model.Internship{}); err != nil {
			return nil, err
		}
		return []model.Internship{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read store file: %w", err)
	}

	var internships []model.Internship
	if err := json.Unmarshal(data, &internships); err != nil {
		return nil, fmt.Errorf("parse store file %s: %w", filepath.Base(r.path), err)
	}
	if internships == nil {
		internships = []model.Internship{}
	}
	return internships, nil
}

func (r *InternshipRepository) save(internships []model.Internship) error {
	data, err := json.MarshalIndent(internships, "", "  ")
	if err != nil {
		return fmt.Errorf("encode store file: %w", err)
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("write store file: %w", err)
	}
	return nil
}
