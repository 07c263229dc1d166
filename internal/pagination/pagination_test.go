package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("accepts valid params", func(t *testing.T) {
		p, err := New(2, 50)
		require.NoError(t, err)
		assert.Equal(t, 2, p.Page)
		assert.Equal(t, 50, p.ItemsPerPage)
	})

	t.Run("rejects page below 1", func(t *testing.T) {
		_, err := New(0, 50)
		assert.ErrorIs(t, err, ErrInvalidPage)

		_, err = New(-3, 50)
		assert.ErrorIs(t, err, ErrInvalidPage)
	})

	t.Run("rejects items_per_page below 1", func(t *testing.T) {
		_, err := New(1, 0)
		assert.ErrorIs(t, err, ErrInvalidPageSize)
	})

	t.Run("rejects items_per_page above 100", func(t *testing.T) {
		_, err := New(1, 101)
		assert.ErrorIs(t, err, ErrInvalidPageSize)
	})

	t.Run("accepts boundary values", func(t *testing.T) {
		_, err := New(1, 1)
		assert.NoError(t, err)

		_, err = New(1, 100)
		assert.NoError(t, err)
	})
}

func TestParse(t *testing.T) {
	t.Run("applies defaults for empty values", func(t *testing.T) {
		p, err := Parse("", "")
		require.NoError(t, err)
		assert.Equal(t, 1, p.Page)
		assert.Equal(t, DefaultItemsPerPage, p.ItemsPerPage)
	})

	t.Run("parses explicit values", func(t *testing.T) {
		p, err := Parse("3", "25")
		require.NoError(t, err)
		assert.Equal(t, 3, p.Page)
		assert.Equal(t, 25, p.ItemsPerPage)
	})

	t.Run("rejects non-numeric page", func(t *testing.T) {
		_, err := Parse("abc", "")
		assert.ErrorIs(t, err, ErrInvalidPage)
	})

	t.Run("rejects non-numeric items_per_page", func(t *testing.T) {
		_, err := Parse("", "lots")
		assert.ErrorIs(t, err, ErrInvalidPageSize)
	})

	t.Run("rejects out of range items_per_page", func(t *testing.T) {
		_, err := Parse("1", "0")
		assert.ErrorIs(t, err, ErrInvalidPageSize)

		_, err = Parse("1", "101")
		assert.ErrorIs(t, err, ErrInvalidPageSize)
	})
}

func TestOffset(t *testing.T) {
	t.Run("first page starts at zero", func(t *testing.T) {
		p, err := New(1, 20)
		require.NoError(t, err)
		assert.Equal(t, 0, p.Offset())
	})

	t.Run("later pages skip earlier items", func(t *testing.T) {
		p, err := New(3, 20)
		require.NoError(t, err)
		assert.Equal(t, 40, p.Offset())
		assert.Equal(t, 20, p.Limit())
	})
}

func TestNewEnvelope(t *testing.T) {
	t.Run("computes total pages with ceiling division", func(t *testing.T) {
		p, err := New(1, 2)
		require.NoError(t, err)

		env := NewEnvelope([]string{"a", "b"}, 5, p)
		assert.Equal(t, 3, env.Pagination.TotalPages)
		assert.Equal(t, int64(5), env.Pagination.TotalItems)
		assert.Equal(t, 1, env.Pagination.CurrentPage)
		assert.Equal(t, 2, env.Pagination.ItemsPerPage)
	})

	t.Run("empty collection has zero pages", func(t *testing.T) {
		p, err := New(1, 100)
		require.NoError(t, err)

		env := NewEnvelope([]string{}, 0, p)
		assert.Equal(t, 0, env.Pagination.TotalPages)
		assert.Equal(t, int64(0), env.Pagination.TotalItems)
	})

	t.Run("exact multiple has no partial page", func(t *testing.T) {
		p, err := New(1, 5)
		require.NoError(t, err)

		env := NewEnvelope(nil, 10, p)
		assert.Equal(t, 2, env.Pagination.TotalPages)
	})

	t.Run("single item makes one page", func(t *testing.T) {
		p, err := New(1, 100)
		require.NoError(t, err)

		env := NewEnvelope(nil, 1, p)
		assert.Equal(t, 1, env.Pagination.TotalPages)
	})
}
