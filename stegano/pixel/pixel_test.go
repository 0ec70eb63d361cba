package pixel
import (
	"image"
	"image/color"
	"errors"
	"testing"
)

func testNRGBA( w, h int ) *image.NRGBA {
	img := image.NewNRGBA( image.Rect( 0, 0, w, h ) )
	for i := range img.Pix {
		img.Pix[i] = uint8( (i * 31 + 13) % 251 )
	}
	return img
}

func TestStreamLength( t *testing.T ) {
	withAlpha := testNRGBA( 10, 10 )
	if l := FromImage( withAlpha ).Len(); l != 10 * 10 * 4 {
		t.Errorf("Wrong stream length for NRGBA: %d != 400", l)
	}

	noAlpha := image.NewYCbCr( image.Rect( 0, 0, 10, 10 ), image.YCbCrSubsampleRatio444 )
	if l := FromImage( noAlpha ).Len(); l != 10 * 10 * 3 {
		t.Errorf("Wrong stream length for YCbCr: %d != 300", l)
	}

	pinned := NewStream( withAlpha, 3 )
	if l := pinned.Len(); l != 10 * 10 * 3 {
		t.Errorf("Wrong stream length for pinned channels: %d != 300", l)
	}
}

func TestGetSetRoundTrip( t *testing.T ) {
	stream := FromImage( testNRGBA( 4, 4 ) )
	for i := 0; i < stream.Len(); i++ {
		want := uint8( i % 256 )
		if err := stream.Set( i, want ); err != nil {
			t.Fatalf("Failed to set byte %d: %v", i, err)
		}
		got, err := stream.Get( i )
		if err != nil {
			t.Fatalf("Failed to get byte %d: %v", i, err)
		}
		if got != want {
			t.Errorf("Byte %d spoiled: %d != %d", i, got, want)
		}
	}
}

func TestRawBytesPreserved( t *testing.T ) {
	// RGBA sources must be cloned byte for byte, not through the
	// color model, or translucent pixels lose their low bits.
	src := image.NewRGBA( image.Rect( 0, 0, 2, 2 ) )
	for i := range src.Pix {
		src.Pix[i] = uint8( 90 + i )
	}
	stream := FromImage( src )
	for i, b := range src.Pix {
		if stream.Image().Pix[i] != b {
			t.Fatalf("Byte %d changed during cloning: %d != %d", i, stream.Image().Pix[i], b)
		}
	}
}

func TestSourceNotModified( t *testing.T ) {
	src := testNRGBA( 4, 4 )
	before := make( []uint8, len(src.Pix) )
	copy( before, src.Pix )

	stream := FromImage( src )
	for i := 0; i < stream.Len(); i++ {
		stream.Set( i, 0 )
	}
	for i, b := range before {
		if src.Pix[i] != b {
			t.Fatal("Stream mutation leaked into the source image")
		}
	}
}

func TestChannelOrder( t *testing.T ) {
	img := image.NewNRGBA( image.Rect( 0, 0, 2, 1 ) )
	img.SetNRGBA( 0, 0, color.NRGBA{1, 2, 3, 4} )
	img.SetNRGBA( 1, 0, color.NRGBA{5, 6, 7, 8} )

	stream := FromImage( img )
	for i, want := range []uint8{1, 2, 3, 4, 5, 6, 7, 8} {
		got, err := stream.Get( i )
		if err != nil {
			t.Fatalf("Failed to get byte %d: %v", i, err)
		}
		if got != want {
			t.Errorf("Wrong byte at %d: %d != %d", i, got, want)
		}
	}

	// alpha skipped when the channel count is pinned to 3
	rgb := NewStream( img, 3 )
	for i, want := range []uint8{1, 2, 3, 5, 6, 7} {
		got, _ := rgb.Get( i )
		if got != want {
			t.Errorf("Wrong rgb byte at %d: %d != %d", i, got, want)
		}
	}
}

func TestIndexOutOfRange( t *testing.T ) {
	stream := FromImage( testNRGBA( 3, 3 ) )
	for _, idx := range []int{ -1, stream.Len(), stream.Len() + 10 } {
		if _, err := stream.Get( idx ); !errors.Is( err, ErrIndexOutOfRange ) {
			t.Errorf("Expected ErrIndexOutOfRange for Get(%d), got %v", idx, err)
		}
		if err := stream.Set( idx, 0 ); !errors.Is( err, ErrIndexOutOfRange ) {
			t.Errorf("Expected ErrIndexOutOfRange for Set(%d), got %v", idx, err)
		}
	}
}
