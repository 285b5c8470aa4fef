package trend

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/mavunowatch/mavuno/pkg/errcode"
)

// EmptyFieldError is returned when a required form field is blank.
func EmptyFieldError(field string) error {
	return &gn.Error{
		Code: errcode.EmptyFieldError,
		Msg:  "Select a <em>%s</em> first",
		Vars: []any{field},
		Err:  fmt.Errorf("field %q is empty", field),
	}
}
