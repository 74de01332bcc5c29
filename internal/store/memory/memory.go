package memory

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"snip/internal/domain"
	"snip/internal/store"
)

type record struct {
	ID       uint   `json:"id"`
	Key      string `json:"key"`
	Original string `json:"original"`
}

// Store keeps entries in process memory. When opened with a file path every
// new entry is appended to that file as a JSON line and replayed on the next
// Open.
type Store struct {
	mu         sync.RWMutex
	byKey      map[string]string
	byOriginal map[string]string
	nextID     uint
	gen        store.CodeGenerator

	file *os.File
	enc  *json.Encoder
}

func New(gen store.CodeGenerator) *Store {
	return &Store{
		byKey:      make(map[string]string),
		byOriginal: make(map[string]string),
		nextID:     1,
		gen:        gen,
	}
}

// Open returns a Store backed by the file at path, creating it if needed.
func Open(path string, gen store.CodeGenerator) (*Store, error) {
	s := New(gen)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	if err := s.load(path); err != nil {
		return nil, err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open store file: %w", err)
	}
	s.file = f
	s.enc = json.NewEncoder(f)

	return s, nil
}

func (s *Store) load(path string) error {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to open store file: %w", err)
	}
	defer func() { _ = f.Close() }()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		if len(scanner.Bytes()) == 0 {
			continue
		}
		var r record
		if err := json.Unmarshal(scanner.Bytes(), &r); err != nil {
			return fmt.Errorf("failed to decode store file line %d: %w", line, err)
		}
		s.byKey[r.Key] = r.Original
		s.byOriginal[r.Original] = r.Key
		if r.ID >= s.nextID {
			s.nextID = r.ID + 1
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read store file: %w", err)
	}
	return nil
}

func (s *Store) FindByOriginal(ctx context.Context, original string) (domain.URLEntry, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.URLEntry{}, false, err
	}

	s.mu.RLock()
	key, ok := s.byOriginal[original]
	s.mu.RUnlock()

	if !ok {
		return domain.URLEntry{}, false, nil
	}
	return domain.URLEntry{Key: key, Original: original}, true, nil
}

func (s *Store) GetByKey(ctx context.Context, key string) (domain.URLEntry, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.URLEntry{}, false, err
	}

	s.mu.RLock()
	original, ok := s.byKey[key]
	s.mu.RUnlock()

	if !ok {
		return domain.URLEntry{}, false, nil
	}
	return domain.URLEntry{Key: key, Original: original}, true, nil
}

// Create returns the existing entry when original is already stored.
func (s *Store) Create(ctx context.Context, original string) (domain.URLEntry, error) {
	if err := ctx.Err(); err != nil {
		return domain.URLEntry{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if key, ok := s.byOriginal[original]; ok {
		return domain.URLEntry{Key: key, Original: original}, nil
	}

	var (
		id  uint
		key string
	)
	for {
		id = s.nextID
		s.nextID++

		var err error
		key, err = s.gen.Generate(id)
		if err != nil {
			return domain.URLEntry{}, fmt.Errorf("failed to generate key: %w", err)
		}
		if _, taken := s.byKey[key]; !taken {
			break
		}
	}

	if s.enc != nil {
		if err := s.enc.Encode(record{ID: id, Key: key, Original: original}); err != nil {
			return domain.URLEntry{}, fmt.Errorf("failed to append to store file: %w", err)
		}
	}

	s.byKey[key] = original
	s.byOriginal[original] = key

	return domain.URLEntry{Key: key, Original: original}, nil
}

// Len reports the number of stored entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byKey)
}

func (s *Store) Close() error {
	if s.file == nil {
		return nil
	}
	return s.file.Close()
}
