package file

import (
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
)

// Ref is the minimal view of an uploaded file needed to check constraints.
type Ref interface {
	// Size returns the file size in bytes.
	Size() int64
	// MIMEType returns the media type without parameters, e.g. "application/pdf".
	MIMEType() string
}

// Info is a plain Ref, useful when size and type are already known.
type Info struct {
	Name        string
	SizeBytes   int64
	ContentType string
}

func (i Info) Size() int64      { return i.SizeBytes }
func (i Info) MIMEType() string { return i.ContentType }

// Header is a Ref backed by a multipart upload. Its MIME type is detected
// from the file content, not taken from the client-declared header.
type Header struct {
	fh       *multipart.FileHeader
	mimeType string
}

// FromHeader wraps a multipart file header, detecting its MIME type once.
// A nil header yields a nil Ref and no error, so optional uploads can be
// passed straight to constraint checks.
func FromHeader(fh *multipart.FileHeader) (Ref, error) {
	if fh == nil {
		return nil, nil
	}
	mimeType, err := GetMIMEType(fh)
	if err != nil {
		return nil, err
	}
	return &Header{fh: fh, mimeType: mimeType}, nil
}

func (h *Header) Size() int64 {
	if h == nil || h.fh == nil {
		return 0
	}
	return h.fh.Size
}

func (h *Header) MIMEType() string {
	if h == nil {
		return ""
	}
	return h.mimeType
}

// Filename returns the sanitized client filename.
func (h *Header) Filename() string {
	if h == nil || h.fh == nil {
		return ""
	}
	return SanitizeFilename(h.fh.Filename)
}

// GetMIMEType detects the MIME type by reading the file content.
// http.DetectContentType inspects at most the first 512 bytes and relies on
// magic bytes, so a renamed file cannot spoof its type. Parameters such as
// charset are dropped.
func GetMIMEType(fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", ErrNilFileHeader
	}

	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFailedToOpenFile, err)
	}
	defer func() { _ = f.Close() }()

	buffer := make([]byte, 512)
	n, err := f.Read(buffer)
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("%w: %v", ErrFailedToReadFile, err)
	}

	detected := http.DetectContentType(buffer[:n])
	mediaType, _, err := mime.ParseMediaType(detected)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFailedToDetectMIMEType, err)
	}
	return mediaType, nil
}

// SanitizeFilename removes path components and NUL bytes from a client
// filename. Returns "unnamed" for empty or special directory references.
//
//	file.SanitizeFilename("../../../etc/passwd")   // "passwd"
//	file.SanitizeFilename("C:\\Users\\notes.pdf") // "notes.pdf"
func SanitizeFilename(filename string) string {
	filename = strings.ReplaceAll(filename, "\\", "/")
	filename = filepath.Base(filename)
	filename = strings.ReplaceAll(filename, "\x00", "")

	if filename == "." || filename == ".." || filename == "" || filename == "/" {
		filename = "unnamed"
	}

	return filename
}
