package common

import "github.com/pkg/errors"

var (
	ErrorInvalidValue      = errors.New("invalid value")
	ErrorMissingColumn     = errors.New("missing column")
	ErrorParseTime         = errors.New("unparseable time")
	ErrorParseValue        = errors.New("unparseable glucose value")
	ErrorUnsupportedFormat = errors.New("unsupported file format")
)
