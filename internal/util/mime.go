package util

import (
	"fmt"
	"io"
	"net/http"
	"strings"
)

// SniffImageType reads the first 512 bytes of r and detects the real content
// type, ignoring whatever the client claimed. The returned reader replays the
// sniffed bytes followed by the rest of r.
func SniffImageType(r io.Reader) (string, io.Reader, error) {
	buf := make([]byte, 512)
	n, err := r.Read(buf)
	if err != nil && err != io.EOF {
		return "", nil, err
	}

	mimeType := http.DetectContentType(buf[:n])
	full := io.MultiReader(strings.NewReader(string(buf[:n])), r)

	if !strings.HasPrefix(mimeType, "image/") {
		return mimeType, full, fmt.Errorf("not an image: %s", mimeType)
	}
	return mimeType, full, nil
}
