package helper

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

const maxImageWidth = 1280

// NormalizeImage decodes an uploaded jpeg/png, caps its width, and re-encodes
// to webp. Profile images, logos and covers all go through this path so the
// blob store holds one predictable format.
func NormalizeImage(fh *multipart.FileHeader) ([]byte, string, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, "", fmt.Errorf("open image: %w", err)
	}
	defer src.Close()

	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return nil, "", fmt.Errorf("decode image: %w", err)
	}

	if img.Bounds().Dx() > maxImageWidth {
		img = imaging.Resize(img, maxImageWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: 80}); err != nil {
		return nil, "", fmt.Errorf("encode webp: %w", err)
	}

	return buf.Bytes(), webpFilename(fh.Filename), nil
}

func webpFilename(original string) string {
	if i := strings.LastIndex(original, "."); i > 0 {
		original = original[:i]
	}
	return original + ".webp"
}
