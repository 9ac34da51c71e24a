package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/mgtools"
	"github.com/bodgit/mgtools/mgscii"
	"github.com/bodgit/mgtools/resource"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
)

const defaultDir = "assets"

var encodings = map[string]encoding.Encoding{
	"mgscii":    mgscii.Encoding,
	"shift-jis": japanese.ShiftJIS,
}

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newConverter(c *cli.Context) (*mgtools.Converter, error) {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger().Level(zerolog.WarnLevel)
	if c.Bool("verbose") {
		logger = logger.Level(zerolog.DebugLevel)
	}

	enc, ok := encodings[strings.ToLower(c.String("encoding"))]
	if !ok {
		return nil, fmt.Errorf("unknown encoding %q", c.String("encoding"))
	}

	v, ok := resource.Versions[c.String("format")]
	if !ok {
		return nil, fmt.Errorf("unknown format %q", c.String("format"))
	}

	return mgtools.New(logger, mgtools.WithVersion(v), mgtools.WithTextEncoding(enc)), nil
}

func main() {
	app := cli.NewApp()

	app.Name = "mgtools"
	app.Usage = "Metal Gear resource container utility"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			EnvVars: []string{"MGTOOLS_VERBOSE"},
			Usage:   "increase verbosity",
		},
		&cli.StringFlag{
			Name:    "encoding",
			EnvVars: []string{"MGTOOLS_ENCODING"},
			Value:   "mgscii",
			Usage:   "locale text encoding, mgscii or shift-jis",
		},
		&cli.StringFlag{
			Name:    "format",
			EnvVars: []string{"MGTOOLS_FORMAT"},
			Value:   resource.MG1.Name,
			Usage:   "container format version",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "export",
			Usage:       "Export container records as editable files",
			Description: "",
			ArgsUsage:   "FILE [DIRECTORY]",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "all",
					Usage: "export every record, not just fonts and text",
				},
				&cli.BoolFlag{
					Name:  "separate-chars",
					Usage: "write one image per glyph instead of an atlas",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				m, err := newConverter(c)
				if err != nil {
					return cli.Exit(err, 1)
				}

				res, err := m.Load(c.Args().First())
				if err != nil {
					return cli.Exit(err, 1)
				}

				dir := c.Args().Get(1)
				if dir == "" {
					dir = filepath.Join(filepath.Dir(c.Args().First()), defaultDir)
				}

				if err := m.Export(res, dir, mgtools.ExportOptions{
					All:           c.Bool("all"),
					SeparateChars: c.Bool("separate-chars"),
				}); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "generate",
			Usage:       "Generate a container from exported files",
			Description: "",
			ArgsUsage:   "DIRECTORY [FILE]",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "base",
					Usage: "container providing records missing from DIRECTORY",
				},
				&cli.IntFlag{
					Name:    "platform",
					EnvVars: []string{"MGTOOLS_PLATFORM"},
					Value:   -1,
					Usage:   "override the platform tag",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				m, err := newConverter(c)
				if err != nil {
					return cli.Exit(err, 1)
				}

				var base *resource.Resource
				if file := c.String("base"); file != "" {
					if base, err = m.Load(file); err != nil {
						return cli.Exit(err, 1)
					}
				}

				res, err := m.Generate(c.Args().First(), base)
				if err != nil {
					return cli.Exit(err, 1)
				}

				if p := c.Int("platform"); p >= 0 {
					if p > 0xffff {
						return cli.Exit(fmt.Sprintf("platform tag %d out of range", p), 1)
					}
					_ = res.SetPlatform(uint16(p))
				}

				file := c.Args().Get(1)
				if file == "" {
					file = filepath.Clean(c.Args().First()) + ".bin"
				}

				if err := m.Save(res, file); err != nil {
					return cli.Exit(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "verify",
			Usage:       "Check a container survives a decode and encode unchanged",
			Description: "",
			ArgsUsage:   "FILE",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				m, err := newConverter(c)
				if err != nil {
					return cli.Exit(err, 1)
				}

				f, err := os.Open(c.Args().First())
				if err != nil {
					return cli.Exit(err, 1)
				}
				defer f.Close()

				sum, err := m.Verify(f)
				if err != nil {
					return cli.Exit(err, 1)
				}

				fmt.Printf("%016x  %s\n", sum, c.Args().First())

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Send()
	}
}
