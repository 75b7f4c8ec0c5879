package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errSentinel = errors.New("sentinel")

func TestErrors(t *testing.T) {
	e := New()
	assert.Nil(t, e.NilIfEmpty())

	e.Add(nil)
	assert.Equal(t, 0, e.Len())

	e.Addf("zone start %d is past zone end %d", 10, 5)
	e.Add(fmt.Errorf("target 3: %w", errSentinel))

	err := e.NilIfEmpty()
	assert.NotNil(t, err)
	assert.Equal(t, 2, e.Len())
	assert.Equal(t, "zone start 10 is past zone end 5\ntarget 3: sentinel", err.Error())
	assert.True(t, errors.Is(err, errSentinel))
}
