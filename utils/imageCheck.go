package utils

import (
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// IsImageURL probes a remote profile image URL and reports whether it serves
// an image content type. Callers reject anything else.
func IsImageURL(rawURL string) bool {
	client := resty.New().SetTimeout(5 * time.Second)

	resp, err := client.R().Head(rawURL)
	if err != nil {
		return false
	}

	return strings.HasPrefix(resp.Header().Get("Content-Type"), "image/")
}
