package lsb
import (
	"fmt"
	"image"
	"errors"

	"pixelveil/stegano/frame"
	"pixelveil/stegano/pixel"
)

/*
 * the core codec: one payload bit per channel byte, written into the
 * least significant bit. flipping an LSB moves a channel value by at
 * most 1, which the eye cannot see. both directions walk the same
 * pixel.Stream, so they agree on the traversal by construction.
 */
var ErrCapacityExceeded = errors.New("not enough channel bytes in the image")

// Capacity is the number of bits img can hide, equal to its channel
// byte count.
func Capacity( img image.Image ) int {
	return pixel.FromImage( img ).Len()
}

// Embed hides payload in a copy of img and returns the copy. The
// channel count follows the decoded image type (see pixel.FromImage);
// callers that embed through a file format should build the stream
// themselves and use EmbedStream.
func Embed( img image.Image, payload []byte ) (*image.NRGBA, error) {
	stream := pixel.FromImage( img )
	if err := EmbedStream( stream, payload ); err != nil {
		return nil, err
	}
	return stream.Image(), nil
}

// Extract recovers a payload hidden by Embed, provided img was decoded
// with the same channel layout the embedding side used.
func Extract( img image.Image ) ([]byte, error) {
	return ExtractStream( pixel.FromImage( img ) )
}

// EmbedStream writes the framed payload into the stream's LSBs. The
// capacity check happens before any byte is written, so on error the
// stream is untouched; channel bytes past the frame keep their exact
// original values. Same stream and payload in, byte identical bytes
// out.
func EmbedStream( stream *pixel.Stream, payload []byte ) error {
	framed, err := frame.New( payload )
	if err != nil {
		return err
	}
	bits := frame.ToBits( framed )

	if len(bits) > stream.Len() {
		return fmt.Errorf("%w: message needs %d bits, image holds %d",
			ErrCapacityExceeded, len(bits), stream.Len())
	}

	for i, bit := range bits {
		b, err := stream.Get( i )
		if err != nil {
			return err
		}
		if err = stream.Set( i, (b & 0xfe) | bit ); err != nil {
			return err
		}
	}
	return nil
}

// ExtractStream reads the 32 length prefix bits first and validates
// the declared length against the stream before touching payload bits,
// so a corrupted or never-embedded image surfaces as an error in
// almost every case. The one blind spot is inherent to LSB
// steganography without authentication: when image noise happens to
// decode to a small length, the result is that many garbage bytes and
// no error.
func ExtractStream( stream *pixel.Stream ) ([]byte, error) {
	if stream.Len() < frame.HeaderBits {
		return nil, fmt.Errorf("%w: image holds %d bits, the length prefix alone needs %d",
			ErrCapacityExceeded, stream.Len(), frame.HeaderBits)
	}

	header, err := readBits( stream, 0, frame.HeaderBits )
	if err != nil {
		return nil, err
	}
	length, err := frame.DeclaredLength( header )
	if err != nil {
		return nil, err
	}
	need := uint64(frame.HeaderBits) + uint64(length) * 8
	if need > uint64(stream.Len()) {
		return nil, fmt.Errorf("%w: declared %d payload bytes, image holds %d bits",
			frame.ErrTruncatedFrame, length, stream.Len())
	}

	payload, err := readBits( stream, frame.HeaderBits, int(length) * 8 )
	if err != nil {
		return nil, err
	}
	return frame.PackBits( payload ), nil
}

func readBits( stream *pixel.Stream, offset, count int ) ([]uint8, error) {
	bits := make( []uint8, 0, count )
	for i := offset; i < offset + count; i++ {
		b, err := stream.Get( i )
		if err != nil {
			return nil, err
		}
		bits = append( bits, b & 1 )
	}
	return bits, nil
}
