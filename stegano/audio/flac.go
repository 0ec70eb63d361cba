package audio
import (
	"io"
	"fmt"
	"bytes"
	"github.com/mewkiz/flac"

	"pixelveil/stegano/frame"
	"pixelveil/stegano/lsb"
)

// FLAC is lossless, so sample LSBs survive a decode/encode round trip
// the same way image channel bytes do. Bits run across frames,
// subframes and samples in stream order.
func HideInFlac( decoy, data []byte ) ([]byte, error) {
	framed, err := frame.New( data )
	if err != nil {
		return nil, err
	}
	bits := frame.ToBits( framed )

	stream, err := flac.Parse( bytes.NewReader( decoy ) )
	if err != nil {
		return nil, err
	}
	defer stream.Close()

	output := new(bytes.Buffer)
	encoder, err := flac.NewEncoder( output, stream.Info, stream.Blocks... )
	if err != nil {
		return nil, err
	}
	defer encoder.Close()

	idx := 0
	for {
		fr, err := stream.Next()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		if err = fr.Parse(); err != nil {
			return nil, err
		}

		for _, subframe := range fr.Subframes {
			for i, sample := range subframe.Samples {
				if idx >= len(bits) {
					break
				}
				subframe.Samples[i] = ((sample >> 1) << 1) | int32( bits[idx] )
				idx++
			}
		}
		if err = encoder.WriteFrame( fr ); err != nil {
			return nil, err
		}
	}
	if idx < len(bits) {
		return nil, fmt.Errorf("%w: message needs %d bits, flac stream holds %d",
			lsb.ErrCapacityExceeded, len(bits), idx)
	}
	return output.Bytes(), nil
}

func RevealFromFlac( decoy []byte ) ([]byte, error) {
	stream, err := flac.Parse( bytes.NewReader( decoy ) )
	if err != nil {
		return nil, err
	}
	defer stream.Close()

	bits := []uint8{}
	for {
		fr, err := stream.Next()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		if err = fr.Parse(); err != nil {
			return nil, err
		}
		for _, subframe := range fr.Subframes {
			for _, sample := range subframe.Samples {
				bits = append( bits, uint8(sample & 1) )
			}
		}
	}
	payload, _, err := frame.FromBits( bits )
	return payload, err
}
