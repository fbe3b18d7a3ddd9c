package export

import (
	"image"
	"image/png"
	"io"
	"os"
)

func EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
