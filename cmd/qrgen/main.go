// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Qrgen encodes text as a QR code.
package main

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
	"syscall"

	"github.com/disintegration/imaging"
	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/unixdj/qrgen"
	"github.com/unixdj/qrgen/internal/config"
)

var g = struct {
	cfg    *config.Config // settings from file and flags
	cfname string         // configuration file name
	fn     string         // output file name
	save   bool           // write configuration and exit
}{}

// flag values, applied over the configuration file
var f = struct {
	level, format, loglevel string
	scale, border, width    int
	upper, normalize        bool
}{}

func printUsage(w io.Writer) {
	cl := getopt.CommandLine
	prog := cl.Program()
	ul := make([]string, 1, 4)
	ul[0] = cl.UsageLine() + " [string ...]"
	ml := max(70-len("Usage: ")-1-len(prog), 0)
	for i := 0; len(ul[i]) > ml; i++ {
		s := ul[i]
		n := ml - 1
		for n > 0 && (s[n] != ' ' || s[n+1] != '[') {
			n--
		}
		ul = append(ul, s[n+1:])
		ul[i] = s[:max(n, 0)]
		ml = 60
	}
	fmt.Fprint(w, "QR code generator\nUsage: ", prog, " ",
		strings.Join(ul, "\n          "), `
If no string is given, data is read from standard input and the final
newline is stripped.  Settings are read from -C file or from
qrgen/config.yaml in the user configuration directory; flags override
them.

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
	fmt.Println(`qrgen version 0.1.0
Copyright (c) 2011 The Go Authors
Copyright (c) 2024 Vadim Vygonets`)
	os.Exit(0)
}

func parseFlags() {
	getopt.SetUsage(usage)
	getopt.Flag(opt(help), 'h', "show this help").SetFlag()
	getopt.Flag(opt(version), 'V', "print version and copyright").SetFlag()
	getopt.Flag(&g.cfname, 'C', "configuration file", "file")
	getopt.Flag(&g.save, 'W', "write settings to the configuration "+
		"file and exit")
	getopt.Flag(&g.fn, 'o', `output file, or "-" for standard output`,
		"file")
	getopt.FlagLong(&f.level, "level", 'l', "error correction level, "+
		"lowest to highest [m]", "l|m|q|h")
	getopt.FlagLong(&f.format, "type", 't', `output format, one of: `+
		strings.Join(config.Formats, ", ")+
		`; types with "i" appended have colours inverted; `+
		`if no -o is given and standard output is a TTY, `+
		`default is utf8, otherwise png`, "type")
	getopt.Flag(&f.scale, 's', `image pixels per QR module ("pixel"); `+
		`only for types pbm and png [4]`, "scale")
	getopt.Flag(&f.border, 'm', `quiet zone modules [4]`, "margin")
	getopt.Flag(&f.width, 'w', `PNG image width in pixels, `+
		`overrides -s`, "width")
	getopt.Flag(&f.upper, 'i', `ignore case, convert input to uppercase`)
	getopt.Flag(&f.normalize, 'n', `apply Unicode compatibility `+
		`decomposition (NFKC) to input`)
	getopt.Flag(&f.loglevel, 'd', `diagnostics level: debug, info, `+
		`warn or error [warn]`, "level")

	getopt.Parse()
}

// loadConfig reads the configuration file and applies the flags
// given on the command line.
func loadConfig() (*config.Config, error) {
	var cfg *config.Config
	var err error
	if g.cfname != "" {
		cfg, err = config.Load(g.cfname)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		return nil, err
	}
	if getopt.IsSet('l') {
		cfg.Level = f.level
	}
	if getopt.IsSet('t') {
		cfg.Format = f.format
	}
	if getopt.IsSet('s') {
		cfg.Scale = f.scale
	}
	if getopt.IsSet('m') {
		cfg.Border = f.border
	}
	if getopt.IsSet('w') {
		cfg.Width = f.width
	}
	if getopt.IsSet('i') {
		cfg.Uppercase = f.upper
	}
	if getopt.IsSet('n') {
		cfg.Normalize = f.normalize
	}
	if getopt.IsSet('d') {
		cfg.LogLevel = f.loglevel
	}
	return cfg, cfg.Validate()
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("qrgen: ")
	parseFlags()

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalln(err)
	}
	g.cfg = cfg
	if g.save {
		path := g.cfname
		if path == "" {
			if path, err = config.DefaultPath(); err != nil {
				log.Fatalln(err)
			}
		}
		if err := config.Save(path, cfg); err != nil {
			log.Fatalln(err)
		}
		return
	}
	lvl, _ := cfg.SlogLevel()
	logger := slog.New(slog.NewTextHandler(os.Stderr,
		&slog.HandlerOptions{Level: lvl}))

	var s string
	if args := getopt.Args(); len(args) != 0 {
		s = strings.Join(args, " ")
	} else {
		var b strings.Builder
		if _, err := io.Copy(&b, os.Stdin); err != nil {
			log.Fatalln(err)
		}
		s, _ = strings.CutSuffix(
			strings.ReplaceAll(b.String(), "\r\n", "\n"), "\n")
	}
	s = prepare(s, cfg)

	lev, _ := qr.ParseLevel(cfg.Level)
	c, err := qr.Generate(s, lev)
	if err != nil {
		log.Fatalln(err)
	}
	logger.Debug("encoded", "bytes", len(s), "version", c.Version,
		"level", c.Level, "mode", c.Mode, "mask", c.Mask,
		"penalty", c.Penalty)

	if cfg.Format == "" {
		if g.fn == "" && isatty.IsTerminal(uintptr(syscall.Stdout)) {
			cfg.Format = "utf8"
		} else {
			cfg.Format = "png"
		}
		logger.Info("output format", "type", cfg.Format)
	}
	write(c)
}

// prepare converts the input text as requested by cfg.
func prepare(s string, cfg *config.Config) string {
	if cfg.Normalize {
		s = norm.NFKC.String(s)
	}
	if cfg.Uppercase {
		s = cases.Upper(language.Und).String(s)
	}
	return s
}

var encoders = map[string]func(*qr.Symbol, io.Writer, *config.Config) error{
	"utf8": func(c *qr.Symbol, w io.Writer, cfg *config.Config) error {
		return c.WriteText(w, cfg.Border, false)
	},
	"utf8i": func(c *qr.Symbol, w io.Writer, cfg *config.Config) error {
		return c.WriteText(w, cfg.Border, true)
	},
	"ascii": func(c *qr.Symbol, w io.Writer, cfg *config.Config) error {
		return c.WriteASCII(w, cfg.Border, false)
	},
	"asciii": func(c *qr.Symbol, w io.Writer, cfg *config.Config) error {
		return c.WriteASCII(w, cfg.Border, true)
	},
	"pbm": func(c *qr.Symbol, w io.Writer, cfg *config.Config) error {
		return c.EncodePBM(w, cfg.Scale, cfg.Border)
	},
	"png": encodePNG,
}

// encodePNG writes c as a PNG image, resized to cfg.Width pixels if
// set.
func encodePNG(c *qr.Symbol, w io.Writer, cfg *config.Config) error {
	var img image.Image = c.Image(cfg.Scale, cfg.Border)
	if cfg.Width > 0 {
		img = imaging.Resize(c.Image(1, cfg.Border), cfg.Width, cfg.Width,
			imaging.NearestNeighbor)
	}
	return imaging.Encode(w, img, imaging.PNG)
}

func write(c *qr.Symbol) {
	fn := g.fn
	if fn == "-" {
		fn = ""
	}
	var w = os.Stdout
	if fn != "" {
		var err error
		if w, err = os.OpenFile(fn, os.O_WRONLY|os.O_CREATE|os.O_TRUNC,
			0666); err != nil {
			log.Fatalln(err)
		}
	}
	err := encoders[g.cfg.Format](c, w, g.cfg)
	if fn != "" && err == nil {
		err = w.Close()
	}
	if err != nil {
		log.Fatalln(err)
	}
}
