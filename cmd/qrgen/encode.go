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

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/grkuntzmd/qrcode"
	"github.com/grkuntzmd/qrcode/internal/config"
	"github.com/grkuntzmd/qrcode/internal/render"
)

var (
	flagECC     string
	flagMask    int
	flagOut     string
	flagFile    string
	flagBorder  int
	flagPreview bool
)

var encodeCmd = &cobra.Command{
	Use:   "encode <text>",
	Short: "Encode text into a QR Code symbol",
	Args:  cobra.ExactArgs(1),
	RunE:  runEncode,
}

func init() {
	encodeCmd.Flags().StringVar(&flagECC, "ecc", "", "error correction level: low, medium, quartile, high")
	encodeCmd.Flags().IntVar(&flagMask, "mask", -1, "mask index 0-7 (negative uses the config default)")
	encodeCmd.Flags().StringVar(&flagOut, "out", "", "output format: svg or term")
	encodeCmd.Flags().StringVar(&flagFile, "file", "", "write output to this file instead of stdout")
	encodeCmd.Flags().IntVar(&flagBorder, "border", -1, "quiet zone width in modules (negative uses the config default)")
	encodeCmd.Flags().BoolVar(&flagPreview, "preview", false, "write an SVG to a temp file and open it in a browser")
}

func runEncode(cmd *cobra.Command, args []string) error {
	text := args[0]

	cfg, err := config.Load(configPath())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	applyFlagOverrides(cfg)

	level, err := parseECCLevel(cfg.ECC)
	if err != nil {
		return err
	}

	start := time.Now()
	sym, err := qrcode.New(text, level, cfg.Mask)
	if err != nil {
		log.Error().Err(err).Str("code", errorCode(err)).Msg("failed to build symbol")
		return err
	}

	log.Info().
		Int("version", sym.Version()).
		Int("mode", sym.Mode()).
		Int("mask", sym.Mask()).
		Int("size", sym.Size()).
		Dur("duration", time.Since(start)).
		Msg("encoded symbol")

	if flagPreview {
		return previewInBrowser(sym, cfg.Border)
	}

	return writeOutput(sym, cfg)
}

// applyFlagOverrides mutates cfg in place so a flag always wins over a YAML
// default for the same field, per the CLI's documented config precedence.
func applyFlagOverrides(cfg *config.Config) {
	if flagECC != "" {
		cfg.ECC = flagECC
	}
	if flagMask >= 0 {
		cfg.Mask = flagMask
	}
	if flagOut != "" {
		cfg.Out = flagOut
	}
	if flagBorder >= 0 {
		cfg.Border = flagBorder
	}
}

func parseECCLevel(s string) (qrcode.ECCLevel, error) {
	switch strings.ToLower(s) {
	case "low":
		return qrcode.Low, nil
	case "medium":
		return qrcode.Medium, nil
	case "quartile":
		return qrcode.Quartile, nil
	case "high":
		return qrcode.High, nil
	default:
		return 0, fmt.Errorf("unknown ECC level %q", s)
	}
}

func writeOutput(sym *qrcode.Symbol, cfg *config.Config) error {
	w := os.Stdout
	if flagFile != "" {
		f, err := os.Create(flagFile)
		if err != nil {
			return err
		}
		defer f.Close()
		return renderTo(sym, cfg, f)
	}
	return renderTo(sym, cfg, w)
}

func renderTo(sym *qrcode.Symbol, cfg *config.Config, w *os.File) error {
	switch strings.ToLower(cfg.Out) {
	case "term":
		return render.Terminal(sym, w, cfg.Border)
	case "svg", "":
		_, err := w.WriteString(render.SVG(sym, cfg.Border))
		return err
	default:
		return fmt.Errorf("unknown output format %q", cfg.Out)
	}
}

func previewInBrowser(sym *qrcode.Symbol, border int) error {
	dir := os.TempDir()
	path := filepath.Join(dir, "qrgen-"+uuid.NewString()+".svg")

	if err := os.WriteFile(path, []byte(render.SVG(sym, border)), 0600); err != nil {
		return fmt.Errorf("writing preview file: %w", err)
	}

	log.Info().Str("path", path).Msg("opening preview in browser")
	return browser.OpenFile(path)
}

func errorCode(err error) string {
	var qrErr *qrcode.Error
	if !errors.As(err, &qrErr) {
		return "unknown"
	}
	return qrErr.Code.String()
}
