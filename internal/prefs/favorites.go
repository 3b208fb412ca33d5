package prefs

import (
	"encoding/json"
	"sort"
	"sync"

	"github.com/pkg/errors"
)

// Favorites is the set of favorited UC slugs mirrored to Storage on every change.
type Favorites struct {
	mu        sync.Mutex
	storage   Storage
	slugs     map[string]struct{}
	observers []func([]string)
}

// NewFavorites seeds the set from storage when storage is non-nil. A stored
// value that is not a JSON list of strings is treated as empty. A valid value
// is rewritten in canonical (sorted, deduplicated) form.
func NewFavorites(storage Storage) (*Favorites, error) {
	f := &Favorites{storage: storage, slugs: make(map[string]struct{})}
	if storage == nil {
		return f, nil
	}

	raw, ok, err := storage.GetItem(KeyFavorites)
	if err != nil {
		return nil, errors.Wrap(err, "read favorites")
	}
	if !ok {
		return f, nil
	}

	var stored []string
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		return f, nil
	}
	for _, slug := range stored {
		f.slugs[slug] = struct{}{}
	}

	if canonical := encodeSlugs(f.sortedLocked()); canonical != raw {
		if err := storage.SetItem(KeyFavorites, canonical); err != nil {
			return nil, errors.Wrap(err, "normalize favorites")
		}
	}
	return f, nil
}

// OnChange registers fn to receive the sorted set after every toggle.
func (f *Favorites) OnChange(fn func(slugs []string)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.observers = append(f.observers, fn)
}

// Toggle adds slug if absent and removes it otherwise. It reports whether slug
// is a favorite afterwards. The in-memory change stands even when persisting fails.
func (f *Favorites) Toggle(slug string) (bool, error) {
	f.mu.Lock()
	_, present := f.slugs[slug]
	if present {
		delete(f.slugs, slug)
	} else {
		f.slugs[slug] = struct{}{}
	}
	snapshot := f.sortedLocked()
	observers := append([]func([]string){}, f.observers...)

	var err error
	if f.storage != nil {
		err = errors.Wrap(f.storage.SetItem(KeyFavorites, encodeSlugs(snapshot)), "persist favorites")
	}
	f.mu.Unlock()

	for _, fn := range observers {
		fn(append([]string(nil), snapshot...))
	}
	return !present, err
}

func (f *Favorites) IsFavorite(slug string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.slugs[slug]
	return ok
}

// Slugs returns the favorites in sorted order.
func (f *Favorites) Slugs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sortedLocked()
}

func (f *Favorites) sortedLocked() []string {
	out := make([]string, 0, len(f.slugs))
	for slug := range f.slugs {
		out = append(out, slug)
	}
	sort.Strings(out)
	return out
}

func encodeSlugs(slugs []string) string {
	// Marshalling a []string cannot fail.
	data, _ := json.Marshal(slugs)
	return string(data)
}
