package local
import (
	"os"
	"io"
	"fmt"
	"strings"
	"strconv"
	"net/http"

	"pixelveil/util"
	"pixelveil/config"
	"pixelveil/stegano"
)

/*
 * package local hosts the codec over HTTP for browser use: static
 * pages from the configuration plus three JSON-less endpoints that
 * move raw bytes. everything stateless, one request per encode or
 * decode call.
 */

// carrier uploads above this size are rejected outright.
const MaxCarrierSize = 64 << 20

func RunApiServer( cfg *config.Config, logger *util.Logger ) error {
	mux := NewMux( cfg, logger )
	logger.LogInfo( "listening and serving at " + cfg.Server.Address )
	return http.ListenAndServe( cfg.Server.Address, mux )
}

// NewMux builds the routes; split out of RunApiServer so tests can
// drive the handlers without a listener.
func NewMux( cfg *config.Config, logger *util.Logger ) *http.ServeMux {
	mux := http.NewServeMux()

	// general user-facing pages
	for uri, page := range cfg.Server.Pages {
		mux.HandleFunc( uri, func(w http.ResponseWriter, r *http.Request) {
			sendFile( page, cfg.Server.NotFoundPage, w )
		})
	}

	// hide a message inside an uploaded carrier
	mux.HandleFunc("POST /api/hide", func(w http.ResponseWriter, r *http.Request) {
		handleHide( w, r, cfg, logger )
	})

	// recover a message from an uploaded carrier
	mux.HandleFunc("POST /api/reveal", func(w http.ResponseWriter, r *http.Request) {
		handleReveal( w, r, logger )
	})

	// how many payload bytes fit into an uploaded carrier
	mux.HandleFunc("POST /api/capacity", func(w http.ResponseWriter, r *http.Request) {
		handleCapacity( w, r, logger )
	})

	return mux
}

func handleHide( w http.ResponseWriter, r *http.Request, cfg *config.Config, logger *util.Logger ) {
	decoy, err := readCarrier( r )
	if err != nil {
		fail( w, logger, http.StatusBadRequest, err )
		return
	}
	message := r.FormValue( "message" )
	if cfg.Stegano.NormalizeText {
		message = util.FixUnicode( message )
	}

	hidden, err := stegano.Hide( decoy, []byte(message) )
	if err != nil {
		fail( w, logger, http.StatusUnprocessableEntity, err )
		return
	}
	w.Header().Set( "Content-Type", "application/octet-stream" )
	w.Write( hidden )
}

func handleReveal( w http.ResponseWriter, r *http.Request, logger *util.Logger ) {
	decoy, err := readCarrier( r )
	if err != nil {
		fail( w, logger, http.StatusBadRequest, err )
		return
	}
	message, err := stegano.Reveal( decoy )
	if err != nil {
		fail( w, logger, http.StatusUnprocessableEntity, err )
		return
	}
	w.Header().Set( "Content-Type", "text/plain; charset=utf-8" )
	w.Write( message )
}

func handleCapacity( w http.ResponseWriter, r *http.Request, logger *util.Logger ) {
	decoy, err := readCarrier( r )
	if err != nil {
		fail( w, logger, http.StatusBadRequest, err )
		return
	}
	capacity, err := stegano.Capacity( decoy )
	if err != nil {
		fail( w, logger, http.StatusUnprocessableEntity, err )
		return
	}
	w.Header().Set( "Content-Type", "text/plain" )
	w.Write( []byte( strconv.Itoa( capacity ) ) )
}

func readCarrier( r *http.Request ) ([]byte, error) {
	if err := r.ParseMultipartForm( MaxCarrierSize ); err != nil {
		return nil, fmt.Errorf("failed to parse the upload: %w", err)
	}
	f, _, err := r.FormFile( "carrier" )
	if err != nil {
		return nil, fmt.Errorf("missing carrier file: %w", err)
	}
	defer f.Close()
	return io.ReadAll( io.LimitReader( f, MaxCarrierSize ) )
}

func fail( w http.ResponseWriter, logger *util.Logger, status int, err error ) {
	logger.LogError( err )
	w.WriteHeader( status )
	w.Write( []byte( err.Error() ) )
}

func sendFile( filename, notFoundPage string, w http.ResponseWriter ) {
	htmlPage, err := os.ReadFile( filename )
	if err != nil {
		htmlPage, err = os.ReadFile( notFoundPage )
		w.WriteHeader( 404 )
		if err != nil {
			w.Write( []byte("Not found") )
		} else {
			w.Write( htmlPage )
		}
		return
	}
	if strings.HasSuffix( filename, ".css" ) {
		w.Header().Set( "Content-Type", "text/css" )
	}
	w.Write( htmlPage )
}
