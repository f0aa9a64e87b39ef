package mystore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// FileStore keeps one JSON document per uid in a single directory.
// There is no cross-process locking: a read racing a write from another
// process can observe a partial file. Acceptable for the single-user scope.
type FileStore[T any] struct {
	sync.Mutex
	dir string
}

func NewFileStore[T any](c context.Context, dir string) (*FileStore[T], func(), error) {
	err := os.MkdirAll(dir, 0o700)
	if err != nil {
		return nil, nil, fmt.Errorf("error creating storage dir %s: %s", dir, err)
	}

	return &FileStore[T]{
		dir: dir,
	}, func() {}, nil
}

func (s *FileStore[T]) RunInTransaction(c context.Context, f func(c context.Context) error) error {
	// Start transaction
	s.Lock()

	ctx := context.WithValue(c, ctxTransactionKey{}, true)

	// Within this block everything is transactional
	err := f(ctx)
	if err != nil {
		// Rollback
		s.Unlock()

		return err
	}

	// Commit
	s.Unlock()

	return nil
}

func (s *FileStore[T]) Put(c context.Context, uid string, value T) error {
	nonTransactional := c.Value(ctxTransactionKey{}) == nil

	if nonTransactional {
		s.Lock()
		defer s.Unlock()
	}

	data, err := json.MarshalIndent(value, "", "\t")
	if err != nil {
		return fmt.Errorf("error marshalling entity with uid %s: %s", uid, err)
	}

	err = os.WriteFile(s.filename(uid), data, 0o600)
	if err != nil {
		return fmt.Errorf("error writing entity with uid %s: %s", uid, err)
	}

	return nil
}

func (s *FileStore[T]) Get(c context.Context, uid string) (T, bool, error) {
	value := new(T)

	nonTransactional := c.Value(ctxTransactionKey{}) == nil

	if nonTransactional {
		s.Lock()
		defer s.Unlock()
	}

	data, err := os.ReadFile(s.filename(uid))
	if err != nil {
		if os.IsNotExist(err) {
			return *value, false, nil
		}

		return *value, false, fmt.Errorf("error reading entity with uid %s: %s", uid, err)
	}

	err = json.Unmarshal(data, value)
	if err != nil {
		return *value, false, fmt.Errorf("error unmarshalling entity with uid %s: %s", uid, err)
	}

	return *value, true, nil
}

func (s *FileStore[T]) List(c context.Context) ([]T, error) {
	nonTransactional := c.Value(ctxTransactionKey{}) == nil

	if nonTransactional {
		s.Lock()
		defer s.Unlock()
	}

	filenames, err := filepath.Glob(filepath.Join(s.dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("error listing entities: %s", err)
	}

	result := make([]T, 0, len(filenames))

	for _, filename := range filenames {
		data, err := os.ReadFile(filename)
		if err != nil {
			return nil, fmt.Errorf("error reading %s: %s", filename, err)
		}

		value := new(T)
		err = json.Unmarshal(data, value)
		if err != nil {
			return nil, fmt.Errorf("error unmarshalling %s: %s", filename, err)
		}

		result = append(result, *value)
	}

	return result, nil
}

func (s *FileStore[T]) filename(uid string) string {
	// uid ends up in a path: keep it flat
	safe := strings.ReplaceAll(uid, string(os.PathSeparator), "_")

	return filepath.Join(s.dir, safe+".json")
}
