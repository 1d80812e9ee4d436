// Package convert turns one icon entry into encoded image bytes in a target
// format. Decoding yields the canonical RGBA raster; encoding dispatches on
// the closed format set, so no unknown-format branch exists past this point.
package convert

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/image/bmp"

	"github.com/backmassage/ico2img/internal/config"
	"github.com/backmassage/ico2img/internal/icodir"
)

// DecodeError reports that an entry's embedded image data could not be
// decoded (corrupt payload, unsupported embedded encoding).
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string { return fmt.Sprintf("cannot decode embedded image: %v", e.Err) }
func (e *DecodeError) Unwrap() error { return e.Err }

// EncodeError reports that the target encoder rejected the decoded raster.
type EncodeError struct {
	Format config.TargetFormat
	Err    error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("cannot encode as %s: %v", e.Format, e.Err)
}
func (e *EncodeError) Unwrap() error { return e.Err }

// Convert decodes one entry and re-encodes it in the target format. It has
// no side effects; writing the returned bytes anywhere is the caller's job.
//
// PNG is the cheap path: the decoded raster is serialized directly. JPEG has
// no alpha channel, so the alpha plane is dropped (not blended) first. BMP
// and WEBP receive the raster with alpha intact.
func Convert(entry icodir.Entry, target config.TargetFormat) ([]byte, error) {
	img, err := entry.Decode()
	if err != nil {
		return nil, &DecodeError{Err: err}
	}

	var buf bytes.Buffer
	switch target {
	case config.FormatPNG:
		err = png.Encode(&buf, img)
	case config.FormatJPEG:
		err = jpeg.Encode(&buf, dropAlpha(img), nil)
	case config.FormatBMP:
		err = bmp.Encode(&buf, img)
	case config.FormatWEBP:
		err = nativewebp.Encode(&buf, img, nil)
	}
	if err != nil {
		return nil, &EncodeError{Format: target, Err: err}
	}
	return buf.Bytes(), nil
}

// dropAlpha flattens a raster to fully opaque pixels by discarding the alpha
// plane. Color channels are taken from the non-premultiplied representation
// and kept as-is; nothing is blended against a background, so a transparent
// red pixel becomes solid red, not pink or white.
func dropAlpha(img image.Image) *image.NRGBA {
	b := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			c.A = 0xFF
			out.SetNRGBA(x-b.Min.X, y-b.Min.Y, c)
		}
	}
	return out
}
