package local
import (
	"bytes"
	"image"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"pixelveil/util"
	"pixelveil/config"
)

func testMux() *http.ServeMux {
	cfg := config.DefaultConfig()
	logger := util.NewLogger( &util.LoggerInfo{} ) // silent
	return NewMux( cfg, logger )
}

func testPNG( t *testing.T ) []byte {
	img := image.NewNRGBA( image.Rect( 0, 0, 64, 64 ) )
	for i := range img.Pix {
		img.Pix[i] = uint8( (i * 37 + 41) % 253 )
	}
	buf := new(bytes.Buffer)
	if err := png.Encode( buf, img ); err != nil {
		t.Fatalf("Failed to build a test png: %v", err)
	}
	return buf.Bytes()
}

func upload( t *testing.T, mux *http.ServeMux, uri string, carrier []byte, message string ) *httptest.ResponseRecorder {
	body := new(bytes.Buffer)
	mw := multipart.NewWriter( body )
	fw, err := mw.CreateFormFile( "carrier", "carrier.png" )
	if err != nil {
		t.Fatalf("Failed to build the upload: %v", err)
	}
	fw.Write( carrier )
	if message != "" {
		mw.WriteField( "message", message )
	}
	mw.Close()

	req := httptest.NewRequest( "POST", uri, body )
	req.Header.Set( "Content-Type", mw.FormDataContentType() )
	rec := httptest.NewRecorder()
	mux.ServeHTTP( rec, req )
	return rec
}

func TestHideRevealOverHTTP( t *testing.T ) {
	mux := testMux()

	rec := upload( t, mux, "/api/hide", testPNG( t ), "hello over http" )
	if rec.Code != http.StatusOK {
		t.Fatalf("Hide failed with status %d: %s", rec.Code, rec.Body.String())
	}
	hidden, _ := io.ReadAll( rec.Body )

	rec = upload( t, mux, "/api/reveal", hidden, "" )
	if rec.Code != http.StatusOK {
		t.Fatalf("Reveal failed with status %d: %s", rec.Code, rec.Body.String())
	}
	if rec.Body.String() != "hello over http" {
		t.Errorf("Round trip spoiled the message: %q", rec.Body.String())
	}
}

func TestCapacityOverHTTP( t *testing.T ) {
	rec := upload( t, testMux(), "/api/capacity", testPNG( t ), "" )
	if rec.Code != http.StatusOK {
		t.Fatalf("Capacity failed with status %d: %s", rec.Code, rec.Body.String())
	}
	if rec.Body.String() != "2044" { // (64*64*4 - 32) / 8
		t.Errorf("Wrong capacity: %s", rec.Body.String())
	}
}

func TestHideRejectsGarbageCarrier( t *testing.T ) {
	rec := upload( t, testMux(), "/api/hide", []byte("not an image"), "msg" )
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("Expected 422 for a non-carrier upload, got %d", rec.Code)
	}
}

func TestHideRejectsMissingCarrier( t *testing.T ) {
	body := new(bytes.Buffer)
	mw := multipart.NewWriter( body )
	mw.WriteField( "message", "msg" )
	mw.Close()

	req := httptest.NewRequest( "POST", "/api/hide", body )
	req.Header.Set( "Content-Type", mw.FormDataContentType() )
	rec := httptest.NewRecorder()
	testMux().ServeHTTP( rec, req )
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for a missing carrier, got %d", rec.Code)
	}
}
