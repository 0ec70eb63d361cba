package img
import (
	"fmt"
	"bytes"
	"image/jpeg"
	"lukechampine.com/jsteg"

	"pixelveil/stegano/frame"
	"pixelveil/stegano/lsb"
)

// JPEG re-compression destroys pixel LSBs, so the payload goes into
// DCT coefficients through jsteg instead. jsteg stores whole bytes,
// which means the byte level frame is used here, not the bit plane.
func HideInJpeg( decoy, data []byte ) ([]byte, error) {
	src, err := jpeg.Decode( bytes.NewReader( decoy ) )
	if err != nil {
		return nil, err
	}
	framed, err := frame.New( data )
	if err != nil {
		return nil, err
	}
	capacity := jsteg.Capacity( src, nil )
	if capacity < len(framed) {
		return nil, fmt.Errorf("%w: message needs %d bytes, jpeg holds %d",
			lsb.ErrCapacityExceeded, len(framed), capacity)
	}

	buf := new(bytes.Buffer)
	if err = jsteg.Hide( buf, src, framed, nil ); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func RevealFromJpeg( decoy []byte ) ([]byte, error) {
	hidden, err := jsteg.Reveal( bytes.NewReader( decoy ) )
	if err != nil {
		return nil, err
	}
	return frame.Parse( hidden )
}

func JpegCapacity( decoy []byte ) (int, error) {
	src, err := jpeg.Decode( bytes.NewReader( decoy ) )
	if err != nil {
		return 0, err
	}
	capacity := jsteg.Capacity( src, nil )
	if capacity <= frame.HeaderSize {
		return 0, nil
	}
	return capacity - frame.HeaderSize, nil
}
