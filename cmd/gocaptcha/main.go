// GoCaptcha — Deterministic captcha image generation.
//
// Usage:
//
//	gocaptcha [options]                 print text and data URI to stdout
//	gocaptcha -o out.png [options]      write the image to a file
//	gocaptcha serve [--port 8080]       run the HTTP captcha service
package main

import (
	"crypto/rand"
	"encoding/hex"
	"flag"
	"fmt"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/xob0t/GoCaptcha/clients/server"
	"github.com/xob0t/GoCaptcha/pkg/captcha"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "serve":
			if err := server.RunServe(os.Args[2:]); err != nil {
				fatal(err)
			}
			return
		case "help", "-h", "--help":
			printUsage()
			return
		}
	}

	if err := run(os.Args[1:]); err != nil {
		fatal(err)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("gocaptcha", flag.ExitOnError)

	var (
		output     string
		text       string
		seedHex    string
		length     int
		width      int
		height     int
		mode       int
		complexity int
		quality    int
		fontPath   string
	)

	fs.StringVar(&output, "o", "", "Output file path (.png or .jpg); stdout data URI when empty")
	fs.StringVar(&output, "output", "", "Output file path (.png or .jpg); stdout data URI when empty")
	fs.StringVar(&text, "text", "", "Explicit captcha text (random when empty)")
	fs.StringVar(&seedHex, "seed", "", "Hex-encoded seed (random when empty)")
	fs.IntVar(&length, "length", 4, "Number of characters")
	fs.IntVar(&width, "w", 140, "Width in pixels")
	fs.IntVar(&width, "width", 140, "Width in pixels")
	// No "-h" alias for height: that shorthand belongs to help.
	fs.IntVar(&height, "height", 40, "Height in pixels")
	fs.IntVar(&mode, "mode", 1, "Color mode: 0 monochrome/light, 1 colorful/light, 2 colorful/dark")
	fs.IntVar(&complexity, "complexity", 4, "Noise complexity (1-10)")
	fs.IntVar(&quality, "quality", 30, "JPEG quality for data URI and .jpg output (10-80)")
	fs.StringVar(&fontPath, "font", "", "Custom TTF font path (embedded font when empty)")

	fs.Usage = printUsage
	if err := fs.Parse(args); err != nil {
		return err
	}

	seed, err := resolveSeed(seedHex)
	if err != nil {
		return err
	}

	builder := captcha.NewBuilder().
		Length(length).
		Width(width).
		Height(height).
		Mode(captcha.ColorMode(mode)).
		Complexity(complexity)

	if fontPath != "" {
		ttf, err := os.ReadFile(fontPath)
		if err != nil {
			return fmt.Errorf("read font %s: %w", fontPath, err)
		}
		fonts, err := captcha.LoadFonts(ttf)
		if err != nil {
			return fmt.Errorf("load font %s: %w", fontPath, err)
		}
		builder.Fonts(fonts)
	}

	c := builder.GenerateWithText(seed, text)
	fmt.Printf("text: %s\n", c.Text())

	if output == "" {
		fmt.Println(c.ToBase64(quality))
		return nil
	}
	return writeImage(output, c, quality)
}

// resolveSeed decodes the -seed flag, or draws 16 fresh random bytes
// when none was given.
func resolveSeed(seedHex string) ([]byte, error) {
	if seedHex != "" {
		seed, err := hex.DecodeString(seedHex)
		if err != nil {
			return nil, fmt.Errorf("invalid seed %q: %w", seedHex, err)
		}
		return seed, nil
	}
	seed := make([]byte, 16)
	if _, err := rand.Read(seed); err != nil {
		return nil, fmt.Errorf("random seed: %w", err)
	}
	return seed, nil
}

// writeImage encodes the captcha image per the file extension.
func writeImage(output string, c *captcha.Captcha, quality int) error {
	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create %s: %w", output, err)
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(output)); ext {
	case ".png":
		if err := png.Encode(f, c.Image()); err != nil {
			return fmt.Errorf("encode PNG: %w", err)
		}
	case ".jpg", ".jpeg":
		if err := jpeg.Encode(f, c.Image(), &jpeg.Options{Quality: quality}); err != nil {
			return fmt.Errorf("encode JPEG: %w", err)
		}
	default:
		return fmt.Errorf("unsupported format %q: use .png or .jpg", ext)
	}

	fmt.Printf("Wrote %s\n", output)
	return nil
}

func printUsage() {
	fmt.Println(`GoCaptcha — Deterministic captcha image generation

USAGE:
  gocaptcha [options]                Print text and JPEG data URI
  gocaptcha -o out.png [options]     Write the image to a file
  gocaptcha serve [--port 8080]      Run the HTTP captcha service

OPTIONS:
  -o, -output <file>   Output file (.png or .jpg)
  -text <string>       Explicit captcha text (default: random)
  -seed <hex>          Seed bytes in hex (default: random)
  -length <n>          Character count (default: 4)
  -w, -width <px>      Image width (default: 140)
  -height <px>         Image height (default: 40)
  -mode <0|1|2>        0 monochrome/light, 1 colorful/light, 2 colorful/dark
  -complexity <1-10>   Noise level (default: 4)
  -quality <10-80>     JPEG quality (default: 30)
  -font <file>         Custom TTF font

EXAMPLES:
  gocaptcha
  gocaptcha -seed 00ff12 -mode 2 -complexity 8
  gocaptcha -o captcha.png -text hello -w 200 -height 60`)
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
