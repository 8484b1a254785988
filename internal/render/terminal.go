/*
 * Copyright © 2020, G.Ralph Kuntz, MD.
 *
 * Licensed under the Apache License, Version 2.0(the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIC
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package render

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

const (
	upperHalfBlock = "▀"
	lowerHalfBlock = "▄"
	fullBlock      = "█"
)

// isTerminal is swapped out in tests to exercise both the ANSI and plain
// rendering paths without a real TTY attached to the test process.
var isTerminal = func() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Terminal writes sym to w as a half-block rendering: two module rows are
// packed into one character row using ▀/▄/█ glyphs and spaces, so the
// printed symbol is roughly square in a typical monospace terminal. No ANSI
// color or escape codes are written. When stdout is not a TTY, Terminal
// writes a plain one-row-per-module rendering of █ and space instead.
func Terminal(sym Symbol, w io.Writer, border int) error {
	if border < 0 {
		border = 0
	}

	bw := bufio.NewWriter(w)

	if !isTerminal() {
		writePlain(bw, sym, border)
		return bw.Flush()
	}

	writeHalfBlock(bw, sym, border)
	return bw.Flush()
}

func writePlain(w *bufio.Writer, sym Symbol, border int) {
	size := sym.Size()
	for y := -border; y < size+border; y++ {
		for x := -border; x < size+border; x++ {
			if moduleAt(sym, x, y) {
				w.WriteString(fullBlock)
			} else {
				w.WriteString(" ")
			}
		}
		w.WriteString("\n")
	}
}

func writeHalfBlock(w *bufio.Writer, sym Symbol, border int) {
	size := sym.Size()
	top := -border
	bottom := size + border

	for y := top; y < bottom; y += 2 {
		for x := top; x < bottom; x++ {
			upper := moduleAt(sym, x, y)
			lower := y+1 < bottom && moduleAt(sym, x, y+1)

			switch {
			case upper && lower:
				fmt.Fprint(w, fullBlock)
			case upper && !lower:
				fmt.Fprint(w, upperHalfBlock)
			case !upper && lower:
				fmt.Fprint(w, lowerHalfBlock)
			default:
				fmt.Fprint(w, " ")
			}
		}
		w.WriteString("\n")
	}
}

func moduleAt(sym Symbol, x, y int) bool {
	size := sym.Size()
	if x < 0 || y < 0 || x >= size || y >= size {
		return false
	}
	return sym.At(x, y)
}

// TerminalWidth reports the usable terminal width in columns, or ok=false
// when stdout isn't a terminal (e.g. piped output) or the ioctl fails.
// Neither Terminal nor the qrgen command calls it.
func TerminalWidth() (width int, ok bool) {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return 0, false
	}
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0, false
	}
	return w, true
}
