package frame
import (
	"fmt"
	"math"
	"errors"
	"encoding/binary"
)

/*
 * payload framing: a 4-byte big endian length prefix followed by the
 * payload itself. the prefix makes extraction self-terminating, so no
 * delimiter scanning is needed and payload bytes can never be confused
 * with an end marker.
 */
const (
	HeaderSize = 4
	HeaderBits = HeaderSize * 8
)

var (
	ErrPayloadTooLarge = errors.New("payload is too large for a 32-bit length prefix")
	ErrTruncatedFrame = errors.New("truncated frame")
)

// New wraps payload with its length prefix. An empty (or nil) payload
// is valid and yields a frame of HeaderSize zero bytes.
func New( payload []byte ) ([]byte, error) {
	if uint64(len(payload)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d bytes", ErrPayloadTooLarge, len(payload))
	}
	framed := make( []byte, HeaderSize + len(payload) )
	binary.BigEndian.PutUint32( framed, uint32(len(payload)) )
	copy( framed[HeaderSize:], payload )
	return framed, nil
}

// ToBits expands every byte of the frame into 8 bits, most significant
// bit first. Each element of the result is 0 or 1.
func ToBits( framed []byte ) []uint8 {
	bits := make( []uint8, 0, len(framed) * 8 )
	for _, b := range framed {
		for i := 7; i >= 0; i-- {
			bits = append( bits, (b >> uint(i)) & 1 )
		}
	}
	return bits
}

// PackBits reassembles bytes from bits, 8 at a time, MSB first.
// Trailing bits beyond the last full byte are ignored.
func PackBits( bits []uint8 ) []byte {
	data := make( []byte, 0, len(bits) / 8 )
	for i := 0; i + 8 <= len(bits); i += 8 {
		b := byte(0)
		for j := 0; j < 8; j++ {
			b = (b << 1) | bits[i + j]
		}
		data = append( data, b )
	}
	return data
}

// DeclaredLength reads the 32 header bits and returns the payload byte
// count they declare. It must be validated against the remaining
// stream before any payload bits are read.
func DeclaredLength( bits []uint8 ) (uint32, error) {
	if len(bits) < HeaderBits {
		return 0, fmt.Errorf("%w: %d bits are not enough for a length prefix",
			ErrTruncatedFrame, len(bits))
	}
	return binary.BigEndian.Uint32( PackBits( bits[:HeaderBits] ) ), nil
}

// FromBits parses one frame from the beginning of bits and returns the
// payload together with the number of bits consumed.
func FromBits( bits []uint8 ) ([]byte, int, error) {
	length, err := DeclaredLength( bits )
	if err != nil {
		return nil, 0, err
	}
	if uint64(len(bits) - HeaderBits) < uint64(length) * 8 {
		return nil, 0, fmt.Errorf("%w: declared %d payload bytes, only %d bits follow the prefix",
			ErrTruncatedFrame, length, len(bits) - HeaderBits)
	}
	consumed := HeaderBits + int(length) * 8
	return PackBits( bits[HeaderBits:consumed] ), consumed, nil
}

// Parse unwraps a byte level frame, for carriers which store whole
// bytes instead of a bit plane.
func Parse( framed []byte ) ([]byte, error) {
	if len(framed) < HeaderSize {
		return nil, fmt.Errorf("%w: %d bytes are not enough for a length prefix",
			ErrTruncatedFrame, len(framed))
	}
	length := binary.BigEndian.Uint32( framed )
	if uint64(len(framed) - HeaderSize) < uint64(length) {
		return nil, fmt.Errorf("%w: declared %d payload bytes, %d available",
			ErrTruncatedFrame, length, len(framed) - HeaderSize)
	}
	return framed[HeaderSize : HeaderSize + int(length)], nil
}
