package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError

	// Logging errors
	CreateLogFileError

	// Remote service errors
	ServiceRequestError
	ServiceEncodeError
	ServiceDecodeError
	ServiceStatusError

	// Form validation errors
	InvalidAreaError
	UnknownCropError
	VocabularyNotLoadedError
	EmptyVocabularyError
	EmptyFieldError

	// Chart errors
	ChartRenderError
	ChartDisposeError
)
