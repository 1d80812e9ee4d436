// Package icodir reads the directory structure of a Windows ICO file and
// exposes each embedded image as an entry whose metadata (width, height,
// bits per pixel) is available without decoding. Pixel decoding is lazy,
// per entry, and delegated to the go-ico codec, which handles both PNG and
// BMP/DIB payloads including AND transparency masks.
package icodir

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"image"

	ico "github.com/sergeymakinen/go-ico"
)

const (
	fileHeaderSize = 6  // reserved(2) + type(2) + count(2)
	dirEntrySize   = 16 // one ICONDIRENTRY
	resourceIcon   = 1  // resource type for icons (2 would be cursors)

	// dibBitCountOffset is where BitCount sits inside a BITMAPINFOHEADER.
	dibBitCountOffset = 14
)

var pngMagic = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

// ErrNotICO is returned by Parse when the file header is not an icon resource.
var ErrNotICO = errors.New("not an ico file")

// Container is a parsed ICO directory. It is immutable after Parse and safe
// for read-only sharing within a run.
type Container struct {
	entries []Entry
}

// Entry is one embedded image record: directory metadata plus the raw
// payload bytes. Decode is a separate, potentially failing step.
type Entry struct {
	width        int
	height       int
	bitsPerPixel int
	data         []byte
}

// Parse reads the ICONDIR header and directory entries from raw ICO bytes.
// A container with zero entries parses successfully; callers decide whether
// emptiness is an error. Payloads are bounds-checked against the file but
// not decoded.
func Parse(raw []byte) (*Container, error) {
	if len(raw) < fileHeaderSize {
		return nil, fmt.Errorf("file too short for ico header (%d bytes)", len(raw))
	}
	if binary.LittleEndian.Uint16(raw[0:2]) != 0 {
		return nil, ErrNotICO
	}
	if binary.LittleEndian.Uint16(raw[2:4]) != resourceIcon {
		return nil, ErrNotICO
	}
	count := int(binary.LittleEndian.Uint16(raw[4:6]))

	dirEnd := fileHeaderSize + count*dirEntrySize
	if len(raw) < dirEnd {
		return nil, fmt.Errorf("file too short for %d directory entries", count)
	}

	c := &Container{entries: make([]Entry, 0, count)}
	for i := 0; i < count; i++ {
		off := fileHeaderSize + i*dirEntrySize
		e := raw[off : off+dirEntrySize]

		size := int(binary.LittleEndian.Uint32(e[8:12]))
		dataOff := int(binary.LittleEndian.Uint32(e[12:16]))
		if dataOff < dirEnd || size < 0 || dataOff+size > len(raw) {
			return nil, fmt.Errorf("entry %d: image data out of bounds (offset %d, size %d)", i, dataOff, size)
		}
		data := raw[dataOff : dataOff+size]

		c.entries = append(c.entries, Entry{
			// A zero width/height byte means 256 pixels.
			width:        dimension(e[0]),
			height:       dimension(e[1]),
			bitsPerPixel: bitsPerPixel(binary.LittleEndian.Uint16(e[6:8]), data),
			data:         data,
		})
	}
	return c, nil
}

func dimension(b byte) int {
	if b == 0 {
		return 256
	}
	return int(b)
}

// bitsPerPixel prefers the directory's BitCount field. Many real-world files
// leave it zero, in which case the value is recovered from the payload: PNG
// entries are stored as 32-bit RGBA, DIB entries carry BitCount in their
// BITMAPINFOHEADER.
func bitsPerPixel(dirBits uint16, data []byte) int {
	if dirBits != 0 {
		return int(dirBits)
	}
	if bytes.HasPrefix(data, pngMagic) {
		return 32
	}
	if len(data) >= dibBitCountOffset+2 {
		return int(binary.LittleEndian.Uint16(data[dibBitCountOffset : dibBitCountOffset+2]))
	}
	return 0
}

// Len returns the number of entries in the container.
func (c *Container) Len() int { return len(c.entries) }

// Entries returns the directory entries in file order. Index = position,
// 0-based, stable.
func (c *Container) Entries() []Entry { return c.entries }

// Width returns the entry's pixel width from the directory header.
func (e Entry) Width() int { return e.width }

// Height returns the entry's pixel height from the directory header.
func (e Entry) Height() int { return e.height }

// BitsPerPixel returns the entry's color depth.
func (e Entry) BitsPerPixel() int { return e.bitsPerPixel }

// Size returns the entry's payload size in bytes.
func (e Entry) Size() int { return len(e.data) }

// Decode decodes the entry's payload into a raster image. It fails if the
// embedded data is corrupt or uses an unsupported encoding; other entries in
// the same container are unaffected.
//
// The payload is wrapped in a synthesized single-entry ICO so the codec sees
// a complete file; this covers both PNG payloads and DIB payloads with their
// doubled-height AND masks.
func (e Entry) Decode() (image.Image, error) {
	wrapped := make([]byte, fileHeaderSize+dirEntrySize+len(e.data))
	binary.LittleEndian.PutUint16(wrapped[0:], 0)
	binary.LittleEndian.PutUint16(wrapped[2:], resourceIcon)
	binary.LittleEndian.PutUint16(wrapped[4:], 1)

	dir := wrapped[fileHeaderSize:]
	dir[0] = dimensionByte(e.width)
	dir[1] = dimensionByte(e.height)
	binary.LittleEndian.PutUint16(dir[4:], 1)                      // color planes
	binary.LittleEndian.PutUint16(dir[6:], uint16(e.bitsPerPixel)) // bit count
	binary.LittleEndian.PutUint32(dir[8:], uint32(len(e.data)))
	binary.LittleEndian.PutUint32(dir[12:], fileHeaderSize+dirEntrySize)

	copy(wrapped[fileHeaderSize+dirEntrySize:], e.data)

	img, err := ico.Decode(bytes.NewReader(wrapped))
	if err != nil {
		return nil, err
	}
	return img, nil
}

func dimensionByte(d int) byte {
	if d >= 256 {
		return 0
	}
	return byte(d)
}
