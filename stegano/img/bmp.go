package img
import (
	"bytes"
	"golang.org/x/image/bmp"

	"pixelveil/stegano/lsb"
	"pixelveil/stegano/pixel"
)

// BMP carriers use 3 channels per pixel. BMP alpha handling varies by
// reader, so the alpha byte never carries payload bits here; the RGB
// bytes are stored uncompressed and survive the round trip exactly.
const bmpChannels = 3

func HideInBMP( decoy, data []byte ) ([]byte, error) {
	src, err := bmp.Decode( bytes.NewReader( decoy ) )
	if err != nil {
		return nil, err
	}
	stream := pixel.NewStream( src, bmpChannels )
	if err = lsb.EmbedStream( stream, data ); err != nil {
		return nil, err
	}
	buf := new(bytes.Buffer)
	if err = bmp.Encode( buf, stream.Image() ); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func RevealFromBMP( decoy []byte ) ([]byte, error) {
	src, err := bmp.Decode( bytes.NewReader( decoy ) )
	if err != nil {
		return nil, err
	}
	return lsb.ExtractStream( pixel.NewStream( src, bmpChannels ) )
}

func BMPCapacity( decoy []byte ) (int, error) {
	src, err := bmp.Decode( bytes.NewReader( decoy ) )
	if err != nil {
		return 0, err
	}
	return payloadBytes( pixel.NewStream( src, bmpChannels ).Len() ), nil
}
