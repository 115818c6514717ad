package utils

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// maxSpriteSize caps the amount of data read for a remote sprite.
const maxSpriteSize = 8 << 20

var httpClient = &http.Client{Timeout: 30 * time.Second}

// DownloadSprite fetches a sprite image (PNG or SVG) from the internet
// and returns its raw bytes together with the sniffed content type.
func DownloadSprite(uri string) ([]byte, string, error) {
	res, err := httpClient.Get(uri)
	if err != nil {
		return nil, "", fmt.Errorf("unable to download sprite from URI: %s: %w", uri, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("unable to download sprite from URI: %s, status %v", uri, res.Status)
	}

	data, err := io.ReadAll(io.LimitReader(res.Body, maxSpriteSize))
	if err != nil {
		return nil, "", fmt.Errorf("unable to read response body: %w", err)
	}

	ctype := DetectContentType(data)
	if !IsImageContent(ctype) {
		return nil, "", fmt.Errorf("the downloaded file is not a valid image type: %s", ctype)
	}

	return data, ctype, nil
}

// IsValidUrl tests a string to determine if it is a well-structured url or not.
func IsValidUrl(uri string) bool {
	_, err := url.ParseRequestURI(uri)
	if err != nil {
		return false
	}

	u, err := url.Parse(uri)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return false
	}

	return true
}

// DetectContentType detects the file type by reading MIME type information of the content.
// SVG documents are sniffed as text by net/http, so they are recognized separately.
func DetectContentType(data []byte) string {
	// Only the first 512 bytes are used to sniff the content type.
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	if strings.Contains(string(head), "<svg") {
		return "image/svg+xml"
	}

	// Always returns a valid content-type and "application/octet-stream" if no others seemed to match.
	return http.DetectContentType(head)
}

// IsImageContent reports whether the content type describes an image.
func IsImageContent(ctype string) bool {
	return strings.HasPrefix(ctype, "image/")
}
