package mystore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileStore(t *testing.T) {
	c := context.TODO()
	dir := filepath.Join(t.TempDir(), "nested", "store")

	ps, cleanup, err := NewFileStore[Person](c, dir)
	assert.NoError(t, err)
	defer cleanup()

	t.Run("Creates storage dir", func(t *testing.T) {
		info, err := os.Stat(dir)
		assert.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("Get not found", func(t *testing.T) {
		_, found, err := ps.Get(c, person.UID)
		assert.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("Put writes a json document", func(t *testing.T) {
		err = ps.Put(c, person.UID, person)
		assert.NoError(t, err)

		_, err := os.Stat(filepath.Join(dir, "123.json"))
		assert.NoError(t, err)
	})

	t.Run("Get found", func(t *testing.T) {
		p, found, err := ps.Get(c, person.UID)
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, person, p)
	})

	t.Run("Put overwrites wholesale", func(t *testing.T) {
		older := person
		older.Age = 43
		err = ps.Put(c, person.UID, older)
		assert.NoError(t, err)

		p, found, err := ps.Get(c, person.UID)
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, 43, p.Age)
	})

	t.Run("List", func(t *testing.T) {
		all, err := ps.List(c)
		assert.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("Survives a new store on the same dir", func(t *testing.T) {
		reopened, cleanup2, err := NewFileStore[Person](c, dir)
		assert.NoError(t, err)
		defer cleanup2()

		p, found, err := reopened.Get(c, person.UID)
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "Marc", p.Name)
	})
}
