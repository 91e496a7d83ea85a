// Package main is the jpegmeta command line tool. It prints the marker
// segments of a JPEG file and optionally renders the image as ASCII art or
// plots its intensity histograms in the terminal.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/edaniels/golog"
	"github.com/fatih/color"
	"github.com/gen2brain/jpegn"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/okanin/jpegmeta"
	"github.com/okanin/jpegmeta/render"
)

func main() {
	var logger golog.Logger

	app := &cli.App{
		Name:      "jpegmeta",
		Usage:     "analyze JPEG files: display header information and render the image as ASCII art",
		ArgsUsage: "<file>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "headers-only",
				Usage: "display only the JPEG headers, without rendering the image",
			},
			&cli.BoolFlag{
				Name:  "histogram",
				Usage: "plot luminosity and channel histograms",
			},
			&cli.IntFlag{
				Name:  "charset",
				Value: int(render.Reversed),
				Usage: "ASCII charset: 0 standard, 1 detailed, 2 blocks, 3 reversed",
			},
			&cli.IntFlag{
				Name:  "width",
				Value: 80,
				Usage: "maximum output width in characters",
			},
			&cli.IntFlag{
				Name:  "height",
				Value: 24,
				Usage: "maximum output height in characters",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "disable colored output",
			},
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"vvv"},
				Usage:   "enable debug logging",
			},
		},
		Before: func(c *cli.Context) error {
			if c.Bool("debug") {
				logger = golog.NewDebugLogger("jpegmeta")
			} else {
				logger = zap.NewNop().Sugar()
			}

			if c.Bool("no-color") {
				color.NoColor = true
			}

			return nil
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return errors.New("expected exactly one JPEG file argument")
			}

			return run(c, logger)
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context, logger golog.Logger) error {
	path := c.Args().First()

	headers, err := jpegmeta.ParseFile(path)
	if err != nil {
		return errors.Wrapf(err, "error parsing headers of %q", path)
	}

	logger.Debugw("parsed headers", "path", path, "segments", headers.Len())
	printHeaders(c.App.Writer, headers)

	if c.Bool("headers-only") && !c.Bool("histogram") {
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "error opening image")
	}
	defer f.Close()

	img, err := jpegn.Decode(f, &jpegn.Options{AutoRotate: true})
	if err != nil {
		return errors.Wrapf(err, "error decoding image %q", path)
	}

	if c.Bool("histogram") {
		fmt.Fprintln(c.App.Writer)

		if err := render.Histogram(c.App.Writer, img, 16); err != nil {
			return errors.Wrap(err, "error plotting histogram")
		}
	}

	if !c.Bool("headers-only") {
		art := render.ASCII(img, render.Options{
			MaxWidth:  c.Int("width"),
			MaxHeight: c.Int("height"),
			Charset:   render.Charset(c.Int("charset")),
		})

		fmt.Fprintln(c.App.Writer, "\nImage (ASCII representation):")
		fmt.Fprintln(c.App.Writer, art)
	}

	return nil
}

var (
	labelColor = color.New(color.FgCyan, color.Bold)
	fieldColor = color.New(color.FgYellow)
)

// printHeaders renders the header set with colored marker labels, in the
// same shape as HeaderSet.String.
func printHeaders(w io.Writer, headers *jpegmeta.HeaderSet) {
	for _, rec := range headers.Records() {
		fmt.Fprintln(w)
		labelColor.Fprintf(w, "%s:\n", rec.Label)
		fmt.Fprintf(w, "  %s %s\n", fieldColor.Sprint("Value:"), rec.Value())
		fmt.Fprintf(w, "  %s %s\n", fieldColor.Sprint("Description:"), rec.Description())

		if rec.Frame != nil {
			fmt.Fprintf(w, "  %s %d bits\n", fieldColor.Sprint("Precision:"), rec.Frame.Precision)
			fmt.Fprintf(w, "  %s %d pixels\n", fieldColor.Sprint("Height:"), rec.Frame.Height)
			fmt.Fprintf(w, "  %s %d pixels\n", fieldColor.Sprint("Width:"), rec.Frame.Width)
		}

		if len(rec.Payload) > 0 {
			preview := rec.Payload
			if len(preview) > 50 {
				fmt.Fprintf(w, "  %s % x ...\n", fieldColor.Sprint("Data:"), preview[:50])
			} else {
				fmt.Fprintf(w, "  %s % x\n", fieldColor.Sprint("Data:"), preview)
			}
		}
	}
}
