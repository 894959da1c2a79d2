// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/unixdj/qrgen"
	"github.com/unixdj/qrgen/internal/config"
)

func TestPrepare(t *testing.T) {
	tests := []struct {
		in        string
		upper     bool
		normalize bool
		want      string
	}{
		{"hello world", false, false, "hello world"},
		{"hello world", true, false, "HELLO WORLD"},
		{"１２３", false, true, "123"},
		{"ｈｅｌｌｏ", true, true, "HELLO"},
		{"ﬁ", false, true, "fi"},
		{"straße", true, false, "STRASSE"},
	}
	for _, tt := range tests {
		cfg := config.Defaults()
		cfg.Uppercase, cfg.Normalize = tt.upper, tt.normalize
		if got := prepare(tt.in, cfg); got != tt.want {
			t.Errorf("prepare(%q, %v, %v) = %q, want %q",
				tt.in, tt.upper, tt.normalize, got, tt.want)
		}
	}
	// Folded full width digits fit numeric mode.
	cfg := config.Defaults()
	cfg.Normalize = true
	c, err := qr.Generate(prepare("０１２３４５６７", cfg), qr.M)
	if err != nil || c.Mode.String() != "numeric" {
		t.Errorf("full width digits: %v, %v", c, err)
	}
}

func TestEncoders(t *testing.T) {
	c, err := qr.Generate("HELLO WORLD", qr.M)
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range config.Formats {
		enc, ok := encoders[name]
		if !ok {
			t.Errorf("no encoder for %s", name)
			continue
		}
		var b bytes.Buffer
		if err := enc(c, &b, config.Defaults()); err != nil || b.Len() == 0 {
			t.Errorf("%s: %d bytes, %v", name, b.Len(), err)
		}
	}
	var b bytes.Buffer
	encoders["ascii"](c, &b, config.Defaults())
	if b.String() != c.ASCII() {
		t.Error("ascii output differs from ASCII()")
	}
}

func TestEncodePNG(t *testing.T) {
	c, err := qr.Generate("HELLO WORLD", qr.Q)
	if err != nil {
		t.Fatal(err)
	}
	for _, tt := range []struct {
		scale, width int
		want         int
	}{
		{4, 0, 4 * 29},
		{1, 0, 29},
		{4, 290, 290},
	} {
		cfg := config.Defaults()
		cfg.Scale, cfg.Width = tt.scale, tt.width
		var b bytes.Buffer
		if err := encodePNG(c, &b, cfg); err != nil {
			t.Fatal(err)
		}
		img, err := png.Decode(&b)
		if err != nil {
			t.Fatal(err)
		}
		r := img.Bounds()
		if r.Dx() != tt.want || r.Dy() != tt.want {
			t.Errorf("scale %d width %d: %v", tt.scale, tt.width, r)
		}
		// The upper left module of the upper left finder is dark.
		px := tt.want * 4 / 29
		if cr, _, _, _ := img.At(r.Min.X+px, r.Min.Y+px).RGBA(); cr != 0 {
			t.Errorf("scale %d width %d: finder corner not black", tt.scale, tt.width)
		}
		if cr, _, _, _ := img.At(r.Min.X, r.Min.Y).RGBA(); cr != 0xffff {
			t.Errorf("scale %d width %d: quiet zone not white", tt.scale, tt.width)
		}
	}
}

func TestUsage(t *testing.T) {
	var b bytes.Buffer
	printUsage(&b)
	if !strings.HasPrefix(b.String(), "QR code generator\nUsage: ") {
		t.Errorf("usage:\n%s", b.String())
	}
}
