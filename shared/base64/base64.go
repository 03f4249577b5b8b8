package base64

import (
	stdBase64 "encoding/base64"
	"errors"
	"fmt"
	"strings"
)

const (
	dataURLPrefix = "data:"
	base64Marker  = ";base64,"
)

var ErrNotDataURL = errors.New("not a base64 data url")

func GetContentType(file string) string {
	start := len(dataURLPrefix)
	end := strings.Index(file, base64Marker)

	if end == -1 || end < start {
		return ""
	}

	return file[start:end]
}

// IsDataURL reports whether file is an inline base64 data url.
func IsDataURL(file string) bool {
	return strings.HasPrefix(file, dataURLPrefix) && strings.Contains(file, base64Marker)
}

// Decode splits a data url into its content type and raw bytes.
func Decode(file string) (contentType string, data []byte, err error) {
	if !IsDataURL(file) {
		return "", nil, ErrNotDataURL
	}

	contentType = GetContentType(file)
	payload := file[strings.Index(file, base64Marker)+len(base64Marker):]

	data, err = stdBase64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("failed to decode data url: %w", err)
	}

	return contentType, data, nil
}

// Extension maps an image content type to a file extension.
func Extension(contentType string) string {
	_, subtype, found := strings.Cut(contentType, "/")
	if !found {
		return "bin"
	}

	subtype, _, _ = strings.Cut(subtype, ";")
	subtype, _, _ = strings.Cut(subtype, "+")

	if subtype == "jpeg" {
		return "jpg"
	}

	return subtype
}
