package mgtools

import (
	"errors"
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"

	"github.com/bodgit/mgtools/resource"
)

var errMismatch = errors.New("re-encoded container differs")

// Verify decodes the container read from r and encodes it again. It returns
// the digest of the input and an error if the two differ.
func (c *Converter) Verify(r io.Reader) (uint64, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}
	want := xxhash.Sum64(b)

	res, err := resource.Decode(b, c.resourceOptions()...)
	if err != nil {
		return want, err
	}

	for i, f := range res.Files {
		fb, err := res.EncodeFile(f)
		if err != nil {
			return want, fmt.Errorf("record %d: %w", i, err)
		}
		c.logger.Debug().Int("index", i).Stringer("type", f.DataType()).Str("digest", fmt.Sprintf("%016x", xxhash.Sum64(fb))).Msg("Record")
	}

	out, err := res.MarshalBinary()
	if err != nil {
		return want, err
	}

	if got := xxhash.Sum64(out); got != want {
		return want, fmt.Errorf("%w: %016x != %016x", errMismatch, got, want)
	}

	return want, nil
}
