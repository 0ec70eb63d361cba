package util
import (
	"strings"
	"golang.org/x/text/unicode/norm"
)

// FixUnicode normalizes a message to NFC so that the byte sequence
// hidden on one machine matches what a user typed on another.
func FixUnicode( in string ) string {
	return norm.NFC.String( in )
}

// GenFilename builds "<name>-hidden.<ext>" next to the original name,
// used when the caller gave no explicit output path.
func GenFilename( path string ) string {
	dot := strings.LastIndex( path, "." )
	if dot <= 0 {
		return path + "-hidden"
	}
	return path[:dot] + "-hidden" + path[dot:]
}
