package xassert_test

import (
	"fmt"
	"io/fs"
	"testing"

	"github.com/ErikKalkoken/go-set"

	"github.com/ErikKalkoken/exprcalc/internal/xassert"
)

func TestHelpers(t *testing.T) {
	t.Run("can compare sets", func(t *testing.T) {
		xassert.EqualSet(t, set.Of(1, 2), set.Of(2, 1))
	})
	t.Run("can compare values", func(t *testing.T) {
		xassert.Equal(t, "a", "a")
	})
	t.Run("can compare floats within a relative tolerance", func(t *testing.T) {
		xassert.EqualFloat(t, 3.8, 1.5+2.3, 1e-9)
		xassert.EqualFloat(t, 1e12, 1e12+1, 1e-9)
		xassert.EqualFloat(t, 0, 1e-10, 1e-9)
	})
	t.Run("can find wrapped errors by type", func(t *testing.T) {
		err := fmt.Errorf("open: %w", &fs.PathError{Op: "open", Path: "x", Err: fs.ErrNotExist})
		got, ok := xassert.ErrorAs[*fs.PathError](t, err)
		if ok {
			xassert.Equal(t, "x", got.Path)
		}
	})
}
