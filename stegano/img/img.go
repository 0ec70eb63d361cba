package img
import (
	"errors"
)

/*
 * byte level carriers: each Hide/Reveal pair takes an encoded image
 * file, decodes it, runs the codec and re-encodes losslessly. the
 * format is picked from magic bytes, never from a file extension.
 */
var ErrUnsupportedFormat = errors.New("unsupported image format")

func isPNG( b []byte ) bool {
	return len(b) >= 8 &&
		b[0] == 0x89 && b[1] == 0x50 && b[2] == 0x4e && b[3] == 0x47 &&
		b[4] == 0x0d && b[5] == 0x0a && b[6] == 0x1a && b[7] == 0x0a
}

func isGIF( b []byte ) bool {
	return len(b) >= 3 && b[0] == 0x47 && b[1] == 0x49 && b[2] == 0x46
}

func isJPEG( b []byte ) bool {
	return len(b) >= 3 && b[0] == 0xff && b[1] == 0xd8 && b[2] == 0xff
}

func isBMP( b []byte ) bool {
	return len(b) >= 2 && b[0] == 0x42 && b[1] == 0x4d
}

// Supported reports whether decoy looks like an image format this
// package can carry a payload in.
func Supported( decoy []byte ) bool {
	return isPNG( decoy ) || isGIF( decoy ) || isJPEG( decoy ) || isBMP( decoy )
}

func Hide( decoy, data []byte ) ([]byte, error) {
	switch {
	case isGIF( decoy ):
		return HideInGif( decoy, data )
	case isPNG( decoy ):
		return HideInPNG( decoy, data )
	case isJPEG( decoy ):
		return HideInJpeg( decoy, data )
	case isBMP( decoy ):
		return HideInBMP( decoy, data )
	}
	return nil, ErrUnsupportedFormat
}

func Reveal( decoy []byte ) ([]byte, error) {
	switch {
	case isGIF( decoy ):
		return RevealFromGif( decoy )
	case isPNG( decoy ):
		return RevealFromPNG( decoy )
	case isJPEG( decoy ):
		return RevealFromJpeg( decoy )
	case isBMP( decoy ):
		return RevealFromBMP( decoy )
	}
	return nil, ErrUnsupportedFormat
}

// Capacity returns how many payload bytes the carrier can hold after
// framing overhead, or an error for unsupported formats. For JPEG the
// estimate comes from the DCT coefficient count, for the rest from the
// channel byte count.
func Capacity( decoy []byte ) (int, error) {
	switch {
	case isGIF( decoy ):
		return GifCapacity( decoy )
	case isPNG( decoy ):
		return PNGCapacity( decoy )
	case isJPEG( decoy ):
		return JpegCapacity( decoy )
	case isBMP( decoy ):
		return BMPCapacity( decoy )
	}
	return 0, ErrUnsupportedFormat
}
