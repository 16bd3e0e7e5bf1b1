package cmderr

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCode(t *testing.T) {
	cause := errors.New("cause")

	require.Zero(t, Code(nil))
	require.Equal(t, 1, Code(cause))
	require.Equal(t, 2, Code(ExitErr{Code: 2, Cause: cause}))
	require.Equal(t, 3, Code(fmt.Errorf("wrapped: %w", ExitErr{Code: 3, Cause: cause})))
	require.ErrorIs(t, ExitErr{Code: 2, Cause: cause}, cause)
}

func TestPrintErr(t *testing.T) {
	var b bytes.Buffer
	printErr(&b, ExitErr{Code: 2, Cause: errors.New("object not found")})
	require.Equal(t, "Error: object not found\n", b.String())
}
