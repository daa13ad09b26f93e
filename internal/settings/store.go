package settings

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

// StorageKey is the key settings are persisted under.
const StorageKey = "settings"

// envelope is the persisted layout, shared with the browser store so a
// saved local storage entry can be imported unchanged.
type envelope struct {
	State struct {
		Settings json.RawMessage `json:"settings"`
	} `json:"state"`
	Version int `json:"version"`
}

// Source is read access to live settings. Subscribers are called
// synchronously with the new snapshot after every change.
type Source interface {
	Settings() Settings
	Subscribe(fn func(Settings)) (cancel func())
}

// Store is the single owner of the settings. Reads never block on
// subscribers; writers are serialized, so notifications arrive in the order
// the updates were applied.
type Store struct {
	backend Backend
	log     zerolog.Logger

	writeMu sync.Mutex

	mu      sync.RWMutex
	current Settings
	subs    []subscriber
	nextID  int
}

type subscriber struct {
	id int
	fn func(Settings)
}

// NewStore loads persisted settings from backend over defaults. Persisted
// fields are merged shallowly; a persisted value that fails validation is
// logged and ignored.
func NewStore(ctx context.Context, backend Backend, defaults Settings, log zerolog.Logger) (*Store, error) {
	if err := Validate(defaults); err != nil {
		return nil, fmt.Errorf("default settings: %w", err)
	}
	s := &Store{
		backend: backend,
		log:     log.With().Str("component", "settings").Logger(),
		current: defaults,
	}

	data, ok, err := backend.Load(ctx, StorageKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return s, nil
	}

	loaded, err := Decode(data, defaults)
	if err != nil {
		s.log.Warn().Err(err).Msg("ignoring persisted settings")
		return s, nil
	}
	s.current = loaded
	return s, nil
}

// Decode reads a persisted envelope, filling absent fields from base.
func Decode(data []byte, base Settings) (Settings, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return base, fmt.Errorf("decode settings: %w", err)
	}
	out := base
	if len(env.State.Settings) > 0 {
		if err := json.Unmarshal(env.State.Settings, &out); err != nil {
			return base, fmt.Errorf("decode settings: %w", err)
		}
	}
	if err := Validate(out); err != nil {
		return base, err
	}
	return out, nil
}

// Encode writes s in the persisted envelope.
func Encode(s Settings) ([]byte, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	var env envelope
	env.State.Settings = raw
	return json.Marshal(env)
}

// Settings returns the current snapshot.
func (s *Store) Settings() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Subscribe registers fn for change notifications until cancel is called.
// fn must not call Update.
func (s *Store) Subscribe(fn func(Settings)) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscriber{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			for i, sub := range s.subs {
				if sub.id == id {
					s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
					return
				}
			}
		})
	}
}

// Update merges p into the current settings, persists and notifies. The
// returned flag is false when p left the settings unchanged, in which case
// nothing is persisted and nobody is notified.
func (s *Store) Update(ctx context.Context, p Patch) (Settings, bool, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	prev := s.Settings()
	next := prev.Apply(p)
	if next == prev {
		return prev, false, nil
	}
	if err := Validate(next); err != nil {
		return prev, false, err
	}

	data, err := Encode(next)
	if err != nil {
		return prev, false, fmt.Errorf("encode settings: %w", err)
	}
	if err := s.backend.Save(ctx, StorageKey, data); err != nil {
		return prev, false, fmt.Errorf("persist settings: %w", err)
	}

	s.mu.Lock()
	s.current = next
	subs := make([]subscriber, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	s.log.Info().
		Str("mode", string(next.ThemeMode)).
		Str("preset", string(next.ThemeColorPresets)).
		Str("font_family", next.FontFamily).
		Int("font_size", next.FontSize).
		Msg("settings updated")

	for _, sub := range subs {
		sub.fn(next)
	}
	return next, true, nil
}
