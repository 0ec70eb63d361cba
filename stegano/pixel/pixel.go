package pixel
import (
	"fmt"
	"image"
	"image/draw"
	"errors"
)

/*
 * a Stream flattens an image's channel bytes into one ordered,
 * random-accessible sequence: row-major pixel order, then R, G, B
 * (and A, see below) inside each pixel. both sides of the codec walk
 * channel bytes through this view, so the traversal order lives in
 * exactly one place.
 *
 * the alpha channel takes part in the stream only when the decoded
 * image type carries one. a YCbCr, gray or paletted source yields 3
 * bytes per pixel, an RGBA/NRGBA source yields 4. encode and decode
 * must agree on this rule, which is why it is fixed here and not
 * configurable (carriers that know better pin the count explicitly,
 * see NewStream).
 */
var ErrIndexOutOfRange = errors.New("channel index out of range")

type Stream struct {
	img		*image.NRGBA
	channels	int
}

// HasAlpha reports whether the image's native color model carries an
// alpha channel.
func HasAlpha( img image.Image ) bool {
	switch img.(type) {
	case *image.NRGBA, *image.RGBA, *image.NRGBA64, *image.RGBA64:
		return true
	}
	return false
}

// FromImage clones img into an NRGBA backing and returns the channel
// stream over the clone. The source image is never modified.
//
// RGBA and NRGBA sources are copied byte for byte. Going through the
// color model instead would divide by alpha for premultiplied sources
// and shift channel values by one, which is exactly the bit plane the
// codec lives in; the file codecs on either side store these bytes
// verbatim, so the stream must see them verbatim too.
func FromImage( img image.Image ) *Stream {
	bounds := img.Bounds()
	cloned := image.NewNRGBA( bounds )

	switch src := img.(type) {
	case *image.NRGBA:
		copyRows( cloned, src.Pix, src.Stride, bounds )
	case *image.RGBA:
		copyRows( cloned, src.Pix, src.Stride, bounds )
	default:
		draw.Draw( cloned, bounds, img, bounds.Min, draw.Src )
	}

	channels := 3
	if HasAlpha( img ) {
		channels = 4
	}
	return &Stream{ cloned, channels }
}

// NewStream is FromImage with the channel count pinned by the caller.
// Carrier codecs use it when the file format, not the decoded Go type,
// decides whether an alpha byte exists: a decoder may hand back an
// RGBA-typed image for an alpha-less file, and both sides of a carrier
// must count channels identically.
func NewStream( img image.Image, channels int ) *Stream {
	s := FromImage( img )
	s.channels = channels
	return s
}

func copyRows( dst *image.NRGBA, pix []uint8, stride int, bounds image.Rectangle ) {
	rowLen := bounds.Dx() * 4
	for y := 0; y < bounds.Dy(); y++ {
		dstOff := dst.PixOffset( bounds.Min.X, bounds.Min.Y + y )
		copy( dst.Pix[dstOff : dstOff + rowLen], pix[y * stride : y * stride + rowLen] )
	}
}

// Len is the total channel byte count: width * height * channels.
func(s *Stream) Len() int {
	bounds := s.img.Bounds()
	return bounds.Dx() * bounds.Dy() * s.channels
}

// Channels is the number of stream bytes each pixel contributes.
func(s *Stream) Channels() int {
	return s.channels
}

// Image returns the NRGBA backing, suitable for re-encoding.
func(s *Stream) Image() *image.NRGBA {
	return s.img
}

func(s *Stream) Get( index int ) (uint8, error) {
	offset, err := s.offset( index )
	if err != nil {
		return 0, err
	}
	return s.img.Pix[offset], nil
}

func(s *Stream) Set( index int, b uint8 ) error {
	offset, err := s.offset( index )
	if err != nil {
		return err
	}
	s.img.Pix[offset] = b
	return nil
}

// offset maps a stream index onto the NRGBA pix buffer, skipping the
// alpha byte of each pixel when the source had no alpha channel.
func(s *Stream) offset( index int ) (int, error) {
	if index < 0 || index >= s.Len() {
		return 0, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, s.Len())
	}
	px := index / s.channels
	ch := index % s.channels
	bounds := s.img.Bounds()
	x := px % bounds.Dx()
	y := px / bounds.Dx()
	return s.img.PixOffset( bounds.Min.X + x, bounds.Min.Y + y ) + ch, nil
}
