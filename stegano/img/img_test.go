package img
import (
	"bytes"
	"errors"
	"testing"
)

func TestDispatchByMagic( t *testing.T ) {
	carriers := map[string][]byte{
		"png": testPNG( t, 64, 64 ),
		"bmp": testBMP( t, 64, 64 ),
		"gif": testGIF( t, 64, 64, 1 ),
		"jpeg": testJPEG( t, 128, 128 ),
	}

	data := []byte("dispatched")
	for name, decoy := range carriers {
		if !Supported( decoy ) {
			t.Errorf("%s carrier not recognized", name)
			continue
		}
		enc, err := Hide( decoy, data )
		if err != nil {
			t.Errorf("Failed to hide in %s: %v", name, err)
			continue
		}
		dec, err := Reveal( enc )
		if err != nil {
			t.Errorf("Failed to reveal from %s: %v", name, err)
		} else if !bytes.Equal( data, dec ) {
			t.Errorf("%s spoiled the data. %v != %v", name, data, dec)
		}

		capacity, err := Capacity( decoy )
		if err != nil || capacity <= 0 {
			t.Errorf("Wrong %s capacity: %d, %v", name, capacity, err)
		}
	}
}

func TestUnsupportedFormat( t *testing.T ) {
	decoy := []byte("plain text is not an image")
	if Supported( decoy ) {
		t.Error("Text recognized as an image")
	}
	if _, err := Hide( decoy, []byte("x") ); !errors.Is( err, ErrUnsupportedFormat ) {
		t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
	}
	if _, err := Reveal( decoy ); !errors.Is( err, ErrUnsupportedFormat ) {
		t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
	}
}
