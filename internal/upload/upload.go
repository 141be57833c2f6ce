// Package upload turns user supplied screenshots into the JPEG data URLs the
// preview and the suggestion service consume.
package upload

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/crypto/blake2b"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

const (
	defaultMaxDimension = 2048
	defaultQuality      = 85
	// DefaultMaxPixels bounds the decoded size of an upload to 64 megapixels.
	DefaultMaxPixels = 64 << 20

	jpegMIME = "image/jpeg"
)

var (
	// ErrEmpty is returned for a zero-length upload.
	ErrEmpty = errors.New("upload: image is empty")
	// ErrUnsupportedFormat is returned when no registered decoder accepts the data.
	ErrUnsupportedFormat = errors.New("upload: unsupported image format")
	// ErrTooLarge is returned when the declared pixel count exceeds Options.MaxPixels.
	ErrTooLarge = errors.New("upload: image dimensions are too large")
)

// Options control how uploads are normalised.
type Options struct {
	// MaxDimension bounds the longer edge; larger images are scaled down.
	MaxDimension int
	// Quality is the JPEG quality used when re-encoding.
	Quality int
	// MaxPixels bounds width*height as declared by the image header. It is
	// checked before any pixel data is decoded.
	MaxPixels int
}

func (o Options) withDefaults() Options {
	if o.MaxDimension <= 0 {
		o.MaxDimension = defaultMaxDimension
	}
	if o.Quality <= 0 || o.Quality > 100 {
		o.Quality = defaultQuality
	}
	if o.MaxPixels <= 0 {
		o.MaxPixels = DefaultMaxPixels
	}
	return o
}

// Image is a normalised screenshot.
type Image struct {
	Name string
	// SourceFormat is the format the upload was decoded from, e.g. "png".
	SourceFormat string
	Width        int
	Height       int
	// Digest is the hex BLAKE2b-256 of the original bytes.
	Digest  string
	DataURL string
}

// ShortDigest returns the first twelve hex characters of the digest.
func (i Image) ShortDigest() string {
	if len(i.Digest) <= 12 {
		return i.Digest
	}
	return i.Digest[:12]
}

// Normalize decodes data in any registered format, scales it to fit
// opts.MaxDimension, and re-encodes it as a JPEG data URL. Images whose
// header declares more than opts.MaxPixels pixels are rejected undecoded.
func Normalize(name string, data []byte, opts Options) (Image, error) {
	if len(data) == 0 {
		return Image{}, ErrEmpty
	}
	opts = opts.withDefaults()

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Image{}, fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return Image{}, fmt.Errorf("%w: %s header declares %dx%d", ErrUnsupportedFormat, format, cfg.Width, cfg.Height)
	}
	if cfg.Width > opts.MaxPixels/cfg.Height {
		return Image{}, fmt.Errorf("%w: %s header declares %dx%d", ErrTooLarge, format, cfg.Width, cfg.Height)
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return Image{}, fmt.Errorf("upload: decode %s: %w", format, err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > opts.MaxDimension || bounds.Dy() > opts.MaxDimension {
		img = imaging.Fit(img, opts.MaxDimension, opts.MaxDimension, imaging.Lanczos)
		bounds = img.Bounds()
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(opts.Quality)); err != nil {
		return Image{}, fmt.Errorf("upload: encode jpeg: %w", err)
	}

	sum := blake2b.Sum256(data)
	return Image{
		Name:         strings.TrimSpace(name),
		SourceFormat: format,
		Width:        bounds.Dx(),
		Height:       bounds.Dy(),
		Digest:       hex.EncodeToString(sum[:]),
		DataURL:      EncodeDataURL(jpegMIME, buf.Bytes()),
	}, nil
}

// EncodeDataURL builds a base64 data URL.
func EncodeDataURL(mime string, payload []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(payload)
}
