package img
import (
	"fmt"
	"bytes"
	"image/gif"

	"pixelveil/stegano/frame"
	"pixelveil/stegano/lsb"
)

// GIF pixels are palette indices, so the bit plane lives in the index
// bytes rather than in color channels. Bits run across animation
// frames in order. Flipping an index LSB swaps between two adjacent
// palette entries, which for photographic palettes stays unnoticeable.
func HideInGif( decoy, data []byte ) ([]byte, error) {
	g, err := gif.DecodeAll( bytes.NewReader( decoy ) )
	if err != nil {
		return nil, err
	}
	framed, err := frame.New( data )
	if err != nil {
		return nil, err
	}
	bits := frame.ToBits( framed )

	total := 0
	for _, fr := range g.Image {
		total += len(fr.Pix)
	}
	if len(bits) > total {
		return nil, fmt.Errorf("%w: message needs %d bits, gif holds %d",
			lsb.ErrCapacityExceeded, len(bits), total)
	}

	bitIdx := 0
	for _, fr := range g.Image {
		for i := range fr.Pix {
			if bitIdx >= len(bits) {
				break
			}
			fr.Pix[i] = (fr.Pix[i] & 0xfe) | bits[bitIdx]
			bitIdx++
		}
		if bitIdx >= len(bits) {
			break
		}
	}

	buf := new(bytes.Buffer)
	if err = gif.EncodeAll( buf, g ); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func RevealFromGif( decoy []byte ) ([]byte, error) {
	g, err := gif.DecodeAll( bytes.NewReader( decoy ) )
	if err != nil {
		return nil, err
	}
	bits := []uint8{}
	for _, fr := range g.Image {
		for _, px := range fr.Pix {
			bits = append( bits, px & 1 )
		}
	}
	payload, _, err := frame.FromBits( bits )
	return payload, err
}

func GifCapacity( decoy []byte ) (int, error) {
	g, err := gif.DecodeAll( bytes.NewReader( decoy ) )
	if err != nil {
		return 0, err
	}
	total := 0
	for _, fr := range g.Image {
		total += len(fr.Pix)
	}
	return payloadBytes( total ), nil
}
