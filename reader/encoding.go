package reader

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// decodingReader wraps r so that its bytes are transcoded from the named
// encoding to UTF-8. UTF-8 input passes through untouched.
func decodingReader(r io.Reader, name string) (io.Reader, error) {
	if name == "" || isUTF8(name) {
		return r, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q: %w", name, err)
	}
	if enc == nil {
		// IANA knows the name but x/text ships no decoder for it.
		return nil, fmt.Errorf("encoding %q is not supported", name)
	}
	if enc == encoding.Nop {
		return r, nil
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}

func isUTF8(name string) bool {
	switch strings.ToUpper(name) {
	case "UTF-8", "UTF8":
		return true
	}
	return false
}
