package service

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// MaxUploadBytes caps a single credential document upload.
const MaxUploadBytes = 10 << 20

// ErrEmptyFile is returned for uploads with no content.
var ErrEmptyFile = errors.New("file is empty")

var allowedExtensions = map[string]bool{
	".pdf":  true,
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

// UploadValidator validates credential document uploads before they reach
// storage.
type UploadValidator struct{}

// NewUploadValidator creates a new upload validator.
func NewUploadValidator() *UploadValidator {
	return &UploadValidator{}
}

// Validate checks content presence, size and file extension.
func (v *UploadValidator) Validate(filename string, data []byte) error {
	if len(data) == 0 {
		return ErrEmptyFile
	}
	if len(data) > MaxUploadBytes {
		return fmt.Errorf("file exceeds %d bytes", MaxUploadBytes)
	}
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExtensions[ext] {
		return fmt.Errorf("unsupported file type %q", ext)
	}
	return nil
}
