package upload

import "errors"

var (
	ErrNoFile           = errors.New("no file selected")
	ErrInvalidPDFType   = errors.New("invalid file type, only PDF files are allowed")
	ErrPDFTooLarge      = errors.New("file exceeds the 16MB limit")
	ErrInvalidCoverType = errors.New("invalid image type, allowed: PNG, JPG, JPEG, GIF, WEBP")
	ErrCoverTooLarge    = errors.New("image exceeds the 5MB limit")
	ErrCoverRequired    = errors.New("cover image is required")
)
