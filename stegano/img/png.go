package img
import (
	"bytes"
	"image/png"

	"pixelveil/stegano/frame"
	"pixelveil/stegano/lsb"
	"pixelveil/stegano/pixel"
)

// PNG carriers always use 4 channels per pixel. The stdlib decoder
// hands gray and paletted sources back as other types, but the stego
// output is re-encoded truecolor either way, so pinning the count is
// what keeps both directions aligned.
const pngChannels = 4

func HideInPNG( decoy, data []byte ) ([]byte, error) {
	src, err := png.Decode( bytes.NewReader( decoy ) )
	if err != nil {
		return nil, err
	}
	stream := pixel.NewStream( src, pngChannels )
	if err = lsb.EmbedStream( stream, data ); err != nil {
		return nil, err
	}
	buf := new(bytes.Buffer)
	if err = png.Encode( buf, stream.Image() ); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func RevealFromPNG( decoy []byte ) ([]byte, error) {
	src, err := png.Decode( bytes.NewReader( decoy ) )
	if err != nil {
		return nil, err
	}
	return lsb.ExtractStream( pixel.NewStream( src, pngChannels ) )
}

func PNGCapacity( decoy []byte ) (int, error) {
	src, err := png.Decode( bytes.NewReader( decoy ) )
	if err != nil {
		return 0, err
	}
	return payloadBytes( pixel.NewStream( src, pngChannels ).Len() ), nil
}

// payloadBytes converts a raw bit capacity into the number of payload
// bytes that fit once the length prefix is accounted for.
func payloadBytes( bits int ) int {
	if bits <= frame.HeaderBits {
		return 0
	}
	return (bits - frame.HeaderBits) / 8
}
