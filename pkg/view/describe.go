package view

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gnames/gn"
)

var markup = strings.NewReplacer("<em>", "", "</em>", "")

// Describe returns a plain-text description of an error for a pane.
// User messages of gn.Error are preferred over the wrapped error chain.
func Describe(err error) string {
	if err == nil {
		return ""
	}
	var gnErr *gn.Error
	if errors.As(err, &gnErr) && gnErr.Msg != "" {
		return markup.Replace(fmt.Sprintf(gnErr.Msg, gnErr.Vars...))
	}
	return err.Error()
}
