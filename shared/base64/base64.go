package base64

import "strings"

// GetContentType extracts the mime type from a base64 data URI,
// e.g. "image/png" from "data:image/png;base64,...".
func GetContentType(file string) string {
	start := len("data:")
	end := strings.Index(file, ";base64,")

	if end == -1 || end < start {
		return ""
	}

	return file[start:end]
}
