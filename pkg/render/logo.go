package render

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

// DefaultLogoName is the placeholder written when no logo is configured.
const DefaultLogoName = "default_logo.png"

const (
	placeholderWidth  = 150
	placeholderHeight = 50
)

// ResolveLogo returns configured when it is a readable image, otherwise a
// placeholder PNG ("Logo" on white) cached in cacheDir.
func ResolveLogo(configured, cacheDir string) (string, error) {
	if configured != "" {
		if _, _, err := imageSize(configured); err == nil {
			return configured, nil
		}
	}

	path := filepath.Join(cacheDir, DefaultLogoName)
	if _, _, err := imageSize(path); err == nil {
		return path, nil
	}

	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return "", fmt.Errorf("create logo folder: %w", err)
	}
	if err := drawPlaceholder(path); err != nil {
		return "", err
	}
	return path, nil
}

func drawPlaceholder(path string) error {
	dc := gg.NewContext(placeholderWidth, placeholderHeight)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetRGB(0, 0, 0)
	dc.SetFontFace(basicfont.Face7x13)
	dc.DrawString("Logo", 10, 30)
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("write placeholder logo: %w", err)
	}
	return nil
}

// imageSize reads the pixel size of a PNG or JPEG without decoding it.
func imageSize(path string) (int, int, error) {
	w, h, _, err := imageInfo(path)
	return w, h, err
}

func imageInfo(path string) (int, int, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, "", err
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, "", err
	}
	return cfg.Width, cfg.Height, format, nil
}
