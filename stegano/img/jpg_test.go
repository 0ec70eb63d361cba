package img
import (
	"bytes"
	"image/jpeg"
	"testing"
)

func testJPEG( t *testing.T, w, h int ) []byte {
	buf := new(bytes.Buffer)
	err := jpeg.Encode( buf, testImage( w, h ), &jpeg.Options{ Quality: 90 } )
	if err != nil {
		t.Fatalf("Failed to build a test jpeg: %v", err)
	}
	return buf.Bytes()
}

func TestJpeg( t *testing.T ) {
	tests := [][]byte{
		[]byte{},
		[]byte("Hi!"),
		[]byte("Hello world!"),
	}

	decoy := testJPEG( t, 128, 128 )
	for _, data := range tests {
		enc, err := HideInJpeg( decoy, data )
		if err != nil {
			t.Errorf("Failed to encode data: %v", err)
			continue
		}
		dec, err := RevealFromJpeg( enc )
		if err != nil {
			t.Errorf("Failed to extract data: %v", err)
		} else if !bytes.Equal( data, dec ) && len(data) != 0 {
			t.Errorf("Steganography spoiled the data. %v != %v", data, dec)
		}
	}
}

func TestJpegCapacity( t *testing.T ) {
	capacity, err := JpegCapacity( testJPEG( t, 128, 128 ) )
	if err != nil {
		t.Fatalf("Failed to measure capacity: %v", err)
	}
	if capacity <= 0 {
		t.Errorf("Expected a positive capacity, got %d", capacity)
	}

	oversized := bytes.Repeat( []byte{1}, capacity * 10 )
	if _, err = HideInJpeg( testJPEG( t, 128, 128 ), oversized ); err == nil {
		t.Error("Expected an error for a payload over capacity")
	}
}
