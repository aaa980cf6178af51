package messages

import "errors"

var (
	ErrNilAdapter          = errors.New("messages: adapter is nil")
	ErrEmptyLocale         = errors.New("messages: empty locale code")
	ErrNilLocaleMessages   = errors.New("messages: nil message map for locale")
	ErrUnsupportedFileType = errors.New("messages: unsupported file type")
	ErrFailedToParseYAML   = errors.New("messages: failed to parse YAML content")
	ErrFailedToParseJSON   = errors.New("messages: failed to parse JSON content")
	ErrInvalidStructure    = errors.New("messages: invalid catalog structure")
	ErrFailedToReadFile    = errors.New("messages: failed to read catalog file")
	ErrFailedToReadDir     = errors.New("messages: failed to read catalog directory")
	ErrEmptyFile           = errors.New("messages: catalog file is empty")
	ErrNoCatalogFiles      = errors.New("messages: no catalog files found")
	ErrLoadingCancelled    = errors.New("messages: loading cancelled")
)
