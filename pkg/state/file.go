package state

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gofrs/flock"

	"github.com/matzehuels/fontify/pkg/config"
	"github.com/matzehuels/fontify/pkg/errors"
	"github.com/matzehuels/fontify/pkg/observability"
)

const (
	fileName = "state.json"

	// lockTimeout bounds how long an update waits for another process.
	lockTimeout = 2 * time.Second
	lockRetry   = 50 * time.Millisecond
)

// DefaultPath returns the state file location inside the config directory.
func DefaultPath() string {
	return filepath.Join(config.Dir(), fileName)
}

// FileStore reads and writes State as a JSON file.
type FileStore struct {
	mu          sync.RWMutex
	path        string
	historySize int
}

// NewFileStore creates a store for the file at path.
// If path is empty, DefaultPath is used. If historySize is not positive,
// DefaultHistorySize is used.
func NewFileStore(path string, historySize int) *FileStore {
	if path == "" {
		path = DefaultPath()
	}
	if historySize <= 0 {
		historySize = DefaultHistorySize
	}
	return &FileStore{path: path, historySize: historySize}
}

// Path returns the state file location.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the state. A missing file is an empty state; an unreadable
// or malformed one fails with ErrCodeInvalidState.
func (s *FileStore) Load(ctx context.Context) (*State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, err := s.read()
	observability.State().OnLoad(ctx, s.path, err)
	return st, err
}

// Save replaces the stored state with st.
func (s *FileStore) Save(ctx context.Context, st *State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	unlock, err := s.lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()
	return s.write(ctx, st)
}

// Update loads the state, applies fn and saves the result while holding
// the lock, so concurrent updates do not overwrite each other. When fn
// returns an error nothing is written.
func (s *FileStore) Update(ctx context.Context, fn func(*State) error) (*State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	unlock, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	st, err := s.read()
	observability.State().OnLoad(ctx, s.path, err)
	if err != nil {
		return nil, err
	}
	if err := fn(st); err != nil {
		return nil, err
	}
	if err := s.write(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}

// TogglePin flips the pinned state of id and returns the new value.
func (s *FileStore) TogglePin(ctx context.Context, id string) (bool, error) {
	var pinned bool
	_, err := s.Update(ctx, func(st *State) error {
		pinned = st.TogglePin(id)
		return nil
	})
	if err != nil {
		return false, err
	}
	observability.State().OnPin(ctx, id, pinned)
	return pinned, nil
}

// Pin adds id to the pinned list.
func (s *FileStore) Pin(ctx context.Context, id string) error {
	_, err := s.Update(ctx, func(st *State) error {
		st.Pin(id)
		return nil
	})
	if err == nil {
		observability.State().OnPin(ctx, id, true)
	}
	return err
}

// Unpin removes id from the pinned list.
func (s *FileStore) Unpin(ctx context.Context, id string) error {
	_, err := s.Update(ctx, func(st *State) error {
		st.Unpin(id)
		return nil
	})
	if err == nil {
		observability.State().OnPin(ctx, id, false)
	}
	return err
}

// AddHistory records a copied text.
func (s *FileStore) AddHistory(ctx context.Context, text string) error {
	st, err := s.Update(ctx, func(st *State) error {
		st.AddHistory(text, s.historySize)
		return nil
	})
	if err == nil {
		observability.State().OnHistory(ctx, len(st.History))
	}
	return err
}

// ClearHistory empties the history, keeping pins.
func (s *FileStore) ClearHistory(ctx context.Context) error {
	_, err := s.Update(ctx, func(st *State) error {
		st.ClearHistory()
		return nil
	})
	if err == nil {
		observability.State().OnHistory(ctx, 0)
	}
	return err
}

func (s *FileStore) read() (*State, error) {
	st := &State{}
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			st.normalize()
			return st, nil
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidState, err, "read %s", s.path)
	}
	if err := json.Unmarshal(data, st); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidState, err, "parse %s", s.path)
	}
	st.normalize()
	return st, nil
}

// write stores st through a temporary file and a rename so readers never
// see a partial document.
func (s *FileStore) write(ctx context.Context, st *State) (err error) {
	start := time.Now()
	defer func() {
		observability.State().OnSave(ctx, s.path, time.Since(start), err)
	}()

	st.normalize()
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), fileName+".*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		return fmt.Errorf("write state file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace state file: %w", err)
	}
	return nil
}

// lock takes the inter-process lock file, waiting up to lockTimeout.
func (s *FileStore) lock(ctx context.Context) (func(), error) {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}
	fl := flock.New(s.path + ".lock")

	lctx, cancel := context.WithTimeout(ctx, lockTimeout)
	defer cancel()
	ok, err := fl.TryLockContext(lctx, lockRetry)
	if ctx.Err() != nil {
		if ok {
			_ = fl.Unlock()
		}
		return nil, ctx.Err()
	}
	if err != nil && !stderrors.Is(err, context.DeadlineExceeded) {
		return nil, fmt.Errorf("lock state file: %w", err)
	}
	if !ok {
		return nil, errors.New(errors.ErrCodeStateLocked,
			"state file %s is locked by another fontify process", s.path)
	}
	return func() { _ = fl.Unlock() }, nil
}
