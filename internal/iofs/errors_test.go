package iofs

import (
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/mavunowatch/mavuno/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestErrors verifies codes, user messages and wrapping of file system
// errors.
func TestErrors(t *testing.T) {
	cause := errors.New("permission denied")

	tests := []struct {
		name   string
		err    error
		code   gn.ErrorCode
		path   string
		detail string
	}{
		{
			name:   "CreateDirError",
			err:    CreateDirError("/test/charts", cause),
			code:   errcode.CreateDirError,
			path:   "/test/charts",
			detail: "cannot create directory",
		},
		{
			name:   "CopyFileError",
			err:    CopyFileError("/test/config.yaml", cause),
			code:   errcode.CopyFileError,
			path:   "/test/config.yaml",
			detail: "cannot copy file",
		},
		{
			name:   "ReadFileError",
			err:    ReadFileError("/test/custom.yaml", cause),
			code:   errcode.ReadFileError,
			path:   "/test/custom.yaml",
			detail: "cannot read /test/custom.yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gnErr *gn.Error
			require.ErrorAs(t, tt.err, &gnErr)

			assert.Equal(t, tt.code, gnErr.Code)
			assert.Contains(t, gnErr.Msg, "<em>%s</em>")
			require.Len(t, gnErr.Vars, 1)
			assert.Equal(t, tt.path, gnErr.Vars[0])

			assert.ErrorIs(t, gnErr.Err, cause)
			assert.Contains(t, gnErr.Err.Error(), tt.detail)
			assert.Contains(t, gnErr.Err.Error(), "from ")
			assert.Contains(t, gnErr.Err.Error(), "iofs.TestErrors",
				"caller is the function that built the error")
		})
	}
}
