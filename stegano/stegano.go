package stegano
import (
	"errors"

	"pixelveil/stegano/img"
	"pixelveil/stegano/audio"
)

/*
 * carrier dispatch over raw file bytes. image formats go through the
 * pixel (or DCT) codecs, audio formats through the sample/tag ones.
 * magic bytes decide, never the file extension.
 */
var ErrUnsupportedCarrier = errors.New("unsupported carrier format")

func isFlac( b []byte ) bool {
	return len(b) >= 4 && b[0] == 0x66 && b[1] == 0x4c && b[2] == 0x61 && b[3] == 0x43
}

func isMP3( b []byte ) bool {
	if len(b) >= 3 && b[0] == 0x49 && b[1] == 0x44 && b[2] == 0x33 {
		// id3v2 tag
		return true
	}
	// bare mpeg frame sync
	return len(b) >= 2 && b[0] == 0xff && (b[1] & 0xe0) == 0xe0
}

func Hide( decoy, data []byte ) ([]byte, error) {
	switch {
	case img.Supported( decoy ):
		return img.Hide( decoy, data )
	case isFlac( decoy ):
		return audio.HideInFlac( decoy, data )
	case isMP3( decoy ):
		return audio.HideInMP3( decoy, data )
	}
	return nil, ErrUnsupportedCarrier
}

func Reveal( decoy []byte ) ([]byte, error) {
	switch {
	case img.Supported( decoy ):
		return img.Reveal( decoy )
	case isFlac( decoy ):
		return audio.RevealFromFlac( decoy )
	case isMP3( decoy ):
		return audio.RevealFromMP3( decoy )
	}
	return nil, ErrUnsupportedCarrier
}

// Capacity reports how many payload bytes the carrier can hold, for
// formats where that is a meaningful question up front.
func Capacity( decoy []byte ) (int, error) {
	if img.Supported( decoy ) {
		return img.Capacity( decoy )
	}
	return 0, ErrUnsupportedCarrier
}
