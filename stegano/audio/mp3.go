package audio
import (
	"os"
	"fmt"
	"bytes"
	"errors"
	"encoding/base64"
	id3 "github.com/bogem/id3v2/v2"
)

// CommentKey marks the ID3v2 comment frame that carries the payload.
// Both sides must use the same key, so it is a constant rather than
// an option.
const CommentKey = "pxv"

var ErrNoHiddenData = errors.New("no hidden data in the id3v2 tag")

// MP3 audio frames are lossy, so instead of touching samples the
// payload rides in an ID3v2 comment frame, base64 encoded. The id3v2
// library only writes tags through a file, hence the temporary file
// dance.
func HideInMP3( decoy, data []byte ) ([]byte, error) {
	f, err := os.CreateTemp( "", "pixelveil-mp3-" )
	if err != nil {
		return nil, err
	}
	tempfile := f.Name()
	defer os.Remove( tempfile )

	if _, err = f.Write( decoy ); err != nil {
		f.Close()
		return nil, err
	}
	f.Close()

	tag, err := id3.Open( tempfile, id3.Options{ Parse: true } )
	if err != nil {
		return nil, err
	}

	tag.AddCommentFrame( id3.CommentFrame{
		Encoding: id3.EncodingUTF8,
		Language: "eng",
		Description: CommentKey,
		Text: base64.StdEncoding.EncodeToString( data ),
	})

	if err = tag.Save(); err != nil {
		tag.Close()
		return nil, err
	}
	if err = tag.Close(); err != nil {
		return nil, err
	}
	return os.ReadFile( tempfile )
}

func RevealFromMP3( decoy []byte ) ([]byte, error) {
	tag, err := id3.ParseReader( bytes.NewReader( decoy ), id3.Options{ Parse: true } )
	if err != nil {
		return nil, err
	}
	for _, f := range tag.GetFrames( tag.CommonID("Comments") ) {
		comment, ok := f.(id3.CommentFrame)
		if ok && comment.Description == CommentKey {
			return base64.StdEncoding.DecodeString( comment.Text )
		}
	}
	return nil, fmt.Errorf("%w: no %q comment frame", ErrNoHiddenData, CommentKey)
}
