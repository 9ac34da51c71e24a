/*
Package mgtools is a library for extracting the assets of a Metal Gear PC
resource container into editable files and generating a container back
from them.
*/
package mgtools

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/text/encoding"

	"github.com/bodgit/mgtools/resource"
)

const defaultWorkers = 1

type Converter struct {
	version  *resource.Version
	encoding encoding.Encoding
	workers  int
	logger   zerolog.Logger
}

// Option configures a Converter.
type Option func(*Converter)

// WithVersion selects the container schema, resource.MG1 by default.
func WithVersion(v *resource.Version) Option {
	return func(c *Converter) {
		c.version = v
	}
}

// WithTextEncoding selects the encoding of locale text, MGSCII by default.
func WithTextEncoding(enc encoding.Encoding) Option {
	return func(c *Converter) {
		c.encoding = enc
	}
}

// WithWorkers sets how many records are converted concurrently. The
// default of one converts records in order.
func WithWorkers(n int) Option {
	return func(c *Converter) {
		if n > 0 {
			c.workers = n
		}
	}
}

func New(logger zerolog.Logger, options ...Option) *Converter {
	c := &Converter{
		version: resource.MG1,
		workers: defaultWorkers,
		logger:  logger,
	}
	for _, o := range options {
		o(c)
	}
	return c
}

func (c *Converter) resourceOptions() []resource.Option {
	return []resource.Option{
		resource.WithVersion(c.version),
		resource.WithTextEncoding(c.encoding),
		resource.WithLogger(c.logger),
	}
}

// Load reads a container from file.
func (c *Converter) Load(file string) (*resource.Resource, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	res, err := resource.Load(f, c.resourceOptions()...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}

	c.logger.Debug().Str("file", file).Stringer("resource", res).Msg("Loaded")

	return res, nil
}

// Save writes res to file.
func (c *Converter) Save(res *resource.Resource, file string) error {
	b, err := res.MarshalBinary()
	if err != nil {
		return err
	}
	if err := os.WriteFile(file, b, 0o644); err != nil {
		return err
	}

	c.logger.Debug().Str("file", file).Stringer("resource", res).Msg("Saved")

	return nil
}
