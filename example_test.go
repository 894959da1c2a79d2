// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr_test

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"os"
	"strings"

	"github.com/unixdj/qrgen"
)

func ExampleGenerate() {
	s, err := qr.Generate("HELLO WORLD", qr.M)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("version %v-%v, %v mode, %dx%d modules\n",
		s.Version, s.Level, s.Mode, s.Size, s.Size)
	fmt.Println("upper left:", s.CellAt(0, 0), s.CellAt(7, 7))
	// Output:
	// version 1-M, alphanumeric mode, 21x21 modules
	// upper left: dark light
}

func ExampleGenerate_error() {
	_, err := qr.Generate(strings.Repeat("x", 3000), qr.L)
	fmt.Println(errors.Is(err, qr.ErrDataTooLong))
	_, err = qr.Generate("grüße", qr.DefaultLevel)
	fmt.Println(errors.Is(err, qr.ErrUnsupportedMode))
	// Output:
	// true
	// true
}

// A Painter counting dark modules.
type darkCounter int

func (d *darkCounter) PaintCell(x, y int, c color.Color) {
	if c == color.Black || color.GrayModel.Convert(c).(color.Gray).Y == 0 {
		*d++
	}
}

func ExampleSymbol_Paint() {
	s, err := qr.Generate("0", qr.L)
	if err != nil {
		log.Fatal(err)
	}
	var n darkCounter
	s.Paint(&n, qr.QuietZone)
	fmt.Println(n > 3*33) // at least three position boxes
	// Output: true
}

func ExampleSymbol_WriteASCII() {
	s, err := qr.Generate("qrgen", qr.H)
	if err != nil {
		log.Fatal(err)
	}
	s.WriteASCII(os.Stdout, 1, false)
}
