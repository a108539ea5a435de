package infrastructure

import (
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"

	"cv-studio/internal/export"
)

func TestMapExecErr(t *testing.T) {
	// the allocator surfaces a missing browser as an exec lookup failure
	_, lookErr := exec.LookPath("definitely-not-a-browser-binary")
	assert.ErrorIs(t, mapExecErr(lookErr), export.ErrPrintUnavailable)

	other := errors.New("target closed")
	assert.Equal(t, other, mapExecErr(other))

	assert.NoError(t, mapExecErr(nil))
}
