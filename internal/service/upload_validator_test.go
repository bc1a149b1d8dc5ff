package service

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUploadValidator_Validate(t *testing.T) {
	v := NewUploadValidator()

	tests := []struct {
		name      string
		filename  string
		data      []byte
		expectErr bool
	}{
		{name: "pdf accepted", filename: "diploma.pdf", data: []byte("pdf")},
		{name: "uppercase extension accepted", filename: "DIPLOMA.PDF", data: []byte("pdf")},
		{name: "png accepted", filename: "scan.png", data: []byte("png")},
		{name: "jpeg accepted", filename: "photo.jpeg", data: []byte("jpg")},
		{name: "empty file rejected", filename: "diploma.pdf", data: nil, expectErr: true},
		{name: "unsupported extension rejected", filename: "notes.txt", data: []byte("text"), expectErr: true},
		{name: "no extension rejected", filename: "diploma", data: []byte("x"), expectErr: true},
		{name: "oversized file rejected", filename: "big.pdf", data: bytes.Repeat([]byte("a"), MaxUploadBytes+1), expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.filename, tt.data)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
