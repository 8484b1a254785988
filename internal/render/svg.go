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

// Package render turns a *qrcode.Symbol into a displayable form. It only
// consumes the symbol's public accessors, so the core package stays free of
// any rendering or I/O concern.
package render

import (
	"fmt"
	"strings"
)

// Symbol is the subset of *qrcode.Symbol the renderers need. Declaring it
// here (rather than importing the concrete type everywhere) keeps the
// renderers testable against a fake without touching the core package.
type Symbol interface {
	Size() int
	At(x, y int) bool
}

// SVG renders sym as a standalone SVG document: one <path> built from a
// single "M x,y h1 v1 h-1 z" unit square per dark module, surrounded by a
// quiet zone border modules wide. A negative border is clamped to 0.
func SVG(sym Symbol, border int) string {
	if border < 0 {
		border = 0
	}

	size := sym.Size()

	var sb strings.Builder
	sb.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	fmt.Fprintf(&sb, "<svg xmlns=\"http://www.w3.org/2000/svg\" version=\"1.1\" viewBox=\"0 0 %[1]d %[1]d\" stroke=\"none\">\n",
		size+border*2)
	sb.WriteString("\t<rect width=\"100%\" height=\"100%\" fill=\"#FFFFFF\"/>\n")
	sb.WriteString("\t<path d=\"")

	first := true
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if !sym.At(x, y) {
				continue
			}
			if !first {
				sb.WriteString(" ")
			}
			first = false
			fmt.Fprintf(&sb, "M%d,%dh1v1h-1z", x+border, y+border)
		}
	}

	sb.WriteString("\" fill=\"#000000\"/>\n")
	sb.WriteString("</svg>\n")

	return sb.String()
}
