// Command qrmatrix encodes text as a QR code and writes it as an
// image or as text.
package main

import (
	"bytes"
	"fmt"
	"image/png"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/encoding/charmap"

	"github.com/unixdj/qrmatrix"
)

var g = struct {
	scale   int      // image pixels per module
	border  int      // quiet zone
	fn      string   // filename
	lev     qr.Level // QR correction level
	format  int      // output file format
	rev     bool     // reverse colours
	latin1  bool     // Latin-1 byte mode
	upper   bool     // uppercase
	verbose bool     // log a summary
}{
	border: qr.DefaultBorder,
}

func printUsage(w io.Writer) {
	cl := getopt.CommandLine
	prog := cl.Program()
	fmt.Fprint(w, "QR code generator\nUsage: ", prog, " ",
		cl.UsageLine(), ` [string ...]
If no string is given, data is read from standard input and the final
newline is stripped.  The data is encoded as a single byte mode segment
in the smallest QR code version able to hold it.

`)
	var b bytes.Buffer
	cl.PrintOptions(&b)
	w.Write(b.Bytes())
}

type opt func()

func (opt) String() string                    { return "" }
func (o opt) Set(string, getopt.Option) error { o(); return nil }

func usage() {
	printUsage(os.Stderr)
	os.Exit(2)
}

func help() {
	printUsage(os.Stdout)
	os.Exit(0)
}

func version() {
	fmt.Println(`qrmatrix version 0.1.0
Copyright (c) 2011 The Go Authors
Copyright (c) 2024 Vadim Vygonets`)
	os.Exit(0)
}

var formats = []string{
	"png", "pngi", "pbm", "pbmi", "utf8", "utf8i", "ascii", "asciii",
	"ansi", "ansii",
}

var encoders = [...]func(*qr.Code, io.Writer) error{
	func(c *qr.Code, w io.Writer) error {
		img := c.Image()
		if img == nil {
			return qr.ErrArgs
		}
		return png.Encode(w, img)
	},
	(*qr.Code).EncodePBM,
	func(c *qr.Code, w io.Writer) error { return c.EncodeText(w, false) },
	func(c *qr.Code, w io.Writer) error { return c.EncodeText(w, true) },
	ansi,
}

func parseFlags() {
	getopt.SetUsage(usage)
	getopt.Flag(opt(help), 'h', "show this help").SetFlag()
	getopt.Flag(opt(version), 'V', "print version and copyright").SetFlag()
	getopt.Flag(&g.latin1, '1', "convert input from UTF-8 to Latin-1")
	getopt.Flag(&g.upper, 'i', `ignore case, convert input to uppercase`)
	getopt.Flag(&g.verbose, 'v', "log the version, level and size "+
		"of the code")
	getopt.Flag(&g.border, 'm', `quiet zone modules`, "margin")
	fno := getopt.Flag(&g.fn, 'o', `output file, or "-" for `+
		`standard output`, "file")
	lev := getopt.Enum('l',
		[]string{"l", "m", "q", "h", "L", "M", "Q", "H"}, "m",
		"error correction level, lowest to highest", "l|m|q|h")
	scale := getopt.Unsigned('s', 4,
		&(getopt.UnsignedLimit{Base: 0, Bits: 28, Min: 1, Max: 1 << 12}),
		`image pixels per QR module; `+
			`ignored for text types`, "scale")
	ff := getopt.Enum('t', formats, "", `output format, one of: `+
		strings.Join(formats, ", ")+
		`; types with "i" appended have colours inverted; `+
		`if no -o is given and standard output is a TTY, `+
		`default is utf8, otherwise png`, "type")

	getopt.Parse()
	if g.border < 0 {
		fmt.Fprintln(os.Stderr, "-m must not be negative")
		usage()
	}
	g.scale = int(*scale)
	g.lev = qr.Level(strings.Index("lmqhLMQH", *lev) & 3)
	if *ff == "" {
		if !fno.Seen() && isatty.IsTerminal(uintptr(syscall.Stdout)) {
			*ff = "utf8"
		} else {
			*ff = "png"
		}
	}
	for i, v := range formats {
		if *ff == v {
			g.format = i >> 1
			g.rev = i&1 != 0
			break
		}
	}
	if g.fn == "-" {
		g.fn = ""
	}
}

func setupLog() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:     os.Stderr,
		NoColor: !isatty.IsTerminal(os.Stderr.Fd()),
	}).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if g.verbose {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func main() {
	parseFlags()
	setupLog()

	var s string
	if args := getopt.Args(); len(args) != 0 {
		s = strings.Join(args, " ")
	} else {
		var b strings.Builder
		if _, err := io.Copy(&b, os.Stdin); err != nil {
			log.Fatal().Err(err).Msg("read standard input")
		}
		s, _ = strings.CutSuffix(
			strings.ReplaceAll(b.String(), "\r\n", "\n"), "\n")
	}
	if g.upper {
		s = strings.ToUpper(s)
	}
	if g.latin1 {
		var err error
		if s, err = charmap.ISO8859_1.NewEncoder().String(s); err != nil {
			log.Fatal().Err(err).Msg("convert to Latin-1")
		}
	}

	c, err := qr.Encode(s, g.lev)
	if err != nil {
		log.Fatal().Err(err).Int("bytes", len(s)).
			Stringer("level", g.lev).Msg("encode")
	}
	log.Info().Int("bytes", len(s)).Stringer("version", c.Version).
		Stringer("level", c.Level).Int("size", c.Size).
		Msg("encoded")
	write(c)
}

func write(c *qr.Code) {
	var w io.Writer = os.Stdout
	var f *os.File
	if g.fn != "" {
		var err error
		if f, err = os.OpenFile(g.fn, os.O_WRONLY|os.O_CREATE|os.O_TRUNC,
			0666); err != nil {
			log.Fatal().Err(err).Msg("open output")
		}
		w = f
	}
	c.Scale = g.scale
	c.Border = g.border
	c.Reverse = g.rev
	err := encoders[g.format](c, w)
	if f != nil && err == nil {
		err = f.Close()
	}
	if err != nil {
		log.Fatal().Err(err).Str("file", g.fn).Msg("write")
	}
}

// ansi writes c as rows of two space wide cells with ANSI background
// colours, black for ink and white otherwise.
func ansi(c *qr.Code, w io.Writer) error {
	if c.Border < 0 {
		return qr.ErrArgs
	}
	color.NoColor = false
	ink := color.New(color.BgBlack).SprintFunc()
	paper := color.New(color.BgHiWhite).SprintFunc()
	var b strings.Builder
	lo, hi := -c.Border, c.Size+c.Border
	for y := lo; y < hi; y++ {
		for x := lo; x < hi; x++ {
			if c.Black(x, y) != c.Reverse {
				b.WriteString(ink("  "))
			} else {
				b.WriteString(paper("  "))
			}
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}
