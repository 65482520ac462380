// Command rooftop-map renders a level script's geometry to PNG
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/disintegration/imaging"

	"github.com/lixenwraith/rooftop-fighter/level"
)

func main() {
	levelPath := flag.String("level", "", "Level script YAML (default: built-in skyline)")
	out := flag.String("o", "level.png", "Output PNG path")
	scale := flag.Float64("scale", 8, "Pixels per world unit")
	thumb := flag.Int("thumb", 0, "Also write a thumbnail of this width next to the output")
	flag.Parse()

	if err := run(*levelPath, *out, *scale, *thumb); err != nil {
		fmt.Fprintf(os.Stderr, "rooftop-map: %v\n", err)
		os.Exit(1)
	}
}

func run(levelPath, out string, scale float64, thumb int) error {
	if scale <= 0 {
		return fmt.Errorf("scale must be positive, got %v", scale)
	}

	var (
		script *level.Script
		err    error
	)
	if levelPath == "" {
		script, err = level.Default()
	} else {
		script, err = level.Load(levelPath)
	}
	if err != nil {
		return err
	}

	dc := renderMap(script, scale)
	if err := dc.SavePNG(out); err != nil {
		return fmt.Errorf("save %s: %w", out, err)
	}
	fmt.Printf("%s: %dx%d\n", out, dc.Width(), dc.Height())

	if thumb > 0 {
		path := thumbPath(out)
		img := imaging.Resize(dc.Image(), thumb, 0, imaging.Lanczos)
		if err := imaging.Save(img, path); err != nil {
			return fmt.Errorf("save thumbnail: %w", err)
		}
		fmt.Printf("%s: %dx%d\n", path, img.Bounds().Dx(), img.Bounds().Dy())
	}
	return nil
}

// thumbPath inserts a .thumb suffix before the extension
func thumbPath(out string) string {
	for i := len(out) - 1; i >= 0 && out[i] != '/'; i-- {
		if out[i] == '.' {
			return out[:i] + ".thumb" + out[i:]
		}
	}
	return out + ".thumb.png"
}
