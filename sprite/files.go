package sprite

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/bodgit/mgtools/chunk"
)

// VariantName returns the file name of variant i of a sprite with n
// variants. A single variant is not suffixed.
func VariantName(base, ext string, i, n int) string {
	if n == 1 {
		return base + ext
	}
	return fmt.Sprintf("%s_%d%s", base, i, ext)
}

// FindVariants returns the variant files of a sprite in fsys: either the
// unsuffixed file alone, or base_0, base_1 and so on up to the first missing
// index. It returns a *chunk.MissingDataError if neither exists.
func FindVariants(fsys fs.FS, base, ext string) ([]string, error) {
	exists := func(name string) (bool, error) {
		_, err := fs.Stat(fsys, name)
		switch {
		case err == nil:
			return true, nil
		case errors.Is(err, fs.ErrNotExist):
			return false, nil
		default:
			return false, err
		}
	}

	single := base + ext
	ok, err := exists(single)
	if err != nil {
		return nil, err
	}
	if ok {
		return []string{single}, nil
	}

	var names []string
	for i := 0; ; i++ {
		name := fmt.Sprintf("%s_%d%s", base, i, ext)
		ok, err := exists(name)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		names = append(names, name)
	}

	if len(names) == 0 {
		return nil, &chunk.MissingDataError{Path: single}
	}

	return names, nil
}
