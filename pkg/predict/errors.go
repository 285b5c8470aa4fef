package predict

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/mavunowatch/mavuno/pkg/errcode"
)

// InvalidAreaError is returned when the area field does not hold a finite
// number.
func InvalidAreaError(area string, err error) error {
	msg := "Area <em>%q</em> is not a number"
	vars := []any{area}
	return &gn.Error{
		Code: errcode.InvalidAreaError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("invalid area %q: %w", area, err),
	}
}

// UnknownCropError is returned when the selected crop is not part of the
// crop vocabulary.
func UnknownCropError(crop string) error {
	msg := "Crop <em>%q</em> is not in the list of known crops"
	vars := []any{crop}
	return &gn.Error{
		Code: errcode.UnknownCropError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("unknown crop %q", crop),
	}
}

// VocabularyNotLoadedError is returned when a prediction is requested
// before the crop list has arrived.
func VocabularyNotLoadedError() error {
	msg := "Crop list is not loaded yet, try again shortly"
	return &gn.Error{
		Code: errcode.VocabularyNotLoadedError,
		Msg:  msg,
		Err:  fmt.Errorf("crop vocabulary is not loaded"),
	}
}

// EmptyVocabularyError is returned when the service sent an empty crop
// list.
func EmptyVocabularyError() error {
	msg := "The service has no known crops, predictions are not possible"
	return &gn.Error{
		Code: errcode.EmptyVocabularyError,
		Msg:  msg,
		Err:  fmt.Errorf("crop vocabulary is empty"),
	}
}
