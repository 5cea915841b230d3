// Package media prepares photo uploads. Photos travel inline as base64
// data-URLs in the image_url field.
package media

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
)

const maxUploadSizeBytes = 10 << 20

var ErrNotImage = errors.New("file is not an image")

var apiSuffix = regexp.MustCompile(`/api/?$`)

// EncodeFile reads an image from disk and returns it as a data-URL. Images
// with an edge longer than maxEdge are downscaled first; maxEdge <= 0
// disables resizing.
func EncodeFile(path string, maxEdge int) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if len(data) > maxUploadSizeBytes {
		return "", fmt.Errorf("file size exceeds %dMB limit", maxUploadSizeBytes>>20)
	}
	return Encode(data, maxEdge)
}

func Encode(data []byte, maxEdge int) (string, error) {
	mtype := mimetype.Detect(data)
	if !strings.HasPrefix(mtype.String(), "image/") {
		return "", fmt.Errorf("%w: detected %s", ErrNotImage, mtype.String())
	}

	mime := mtype.String()
	if maxEdge > 0 {
		resized, rmime, ok, err := downscale(data, mime, maxEdge)
		if err != nil {
			return "", err
		}
		if ok {
			data, mime = resized, rmime
		}
	}

	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// downscale reports ok=false when the image already fits or is in a format
// imaging cannot decode; the original bytes are used then.
func downscale(data []byte, mime string, maxEdge int) ([]byte, string, bool, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, "", false, nil
	}

	b := img.Bounds()
	if b.Dx() <= maxEdge && b.Dy() <= maxEdge {
		return nil, "", false, nil
	}

	thumb := imaging.Fit(img, maxEdge, maxEdge, imaging.Lanczos)

	format, outMime := imaging.JPEG, "image/jpeg"
	if mime == "image/png" {
		format, outMime = imaging.PNG, "image/png"
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumb, format); err != nil {
		return nil, "", false, err
	}
	return buf.Bytes(), outMime, true, nil
}

// NormalizeBase64Payload makes value a data-URL. Bare base64 is assumed to
// be PNG.
func NormalizeBase64Payload(value string) string {
	raw := strings.TrimSpace(value)
	if raw == "" {
		return ""
	}
	if strings.HasPrefix(raw, "data:image/") {
		return raw
	}
	return "data:image/png;base64," + raw
}

// NormalizeImageURL turns a stored image_url into something displayable.
// Absolute http(s) and data-URLs pass through; root-relative paths are
// resolved against the API origin.
func NormalizeImageURL(imageURL, apiBaseURL string) string {
	url := strings.TrimSpace(imageURL)
	if url == "" {
		return ""
	}

	if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") || strings.HasPrefix(url, "data:image/") {
		return url
	}

	if strings.HasPrefix(url, "/") {
		base := apiSuffix.ReplaceAllString(apiBaseURL, "")
		base = strings.TrimSuffix(base, "/")
		return base + url
	}

	return url
}

// DecodeDataURL returns the mime type and bytes of a base64 data-URL.
func DecodeDataURL(value string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(value, "data:")
	if !ok {
		return "", nil, errors.New("not a data URL")
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok || !strings.HasSuffix(meta, ";base64") {
		return "", nil, errors.New("not a base64 data URL")
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, err
	}
	return strings.TrimSuffix(meta, ";base64"), data, nil
}
