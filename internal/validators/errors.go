package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidEndpoint      = errors.New("invalid endpoint url")
	ErrEmptyFilePath        = errors.New("file path is required")
	ErrInvalidFileFieldName = errors.New("invalid file field name")
)
