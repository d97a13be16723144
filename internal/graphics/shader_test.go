package graphics

import (
	"testing"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeObject answers status and log queries the way a GL driver would.
type fakeObject struct {
	status int32
	log    string
	asked  []uint32
}

func (f *fakeObject) getiv(object, pname uint32, out *int32) {
	f.asked = append(f.asked, pname)
	switch pname {
	case gl.INFO_LOG_LENGTH:
		*out = int32(len(f.log) + 1)
	default:
		*out = f.status
	}
}

func (f *fakeObject) getLog(object uint32, size int32, length *int32, buf *uint8) {
	copy(unsafe.Slice(buf, int(size)), f.log)
}

func TestInfoLogSuccessSkipsLog(t *testing.T) {
	f := &fakeObject{status: gl.TRUE, log: "unused"}

	msg, failed := infoLog(7, gl.COMPILE_STATUS, f.getiv, f.getLog)
	assert.False(t, failed)
	assert.Empty(t, msg)
	assert.Equal(t, []uint32{gl.COMPILE_STATUS}, f.asked)
}

func TestInfoLogFailureReturnsDriverLog(t *testing.T) {
	f := &fakeObject{status: gl.FALSE, log: "0:3: syntax error"}

	msg, failed := infoLog(7, gl.LINK_STATUS, f.getiv, f.getLog)
	require.True(t, failed)
	assert.Equal(t, "0:3: syntax error", msg)
	assert.Equal(t, []uint32{gl.LINK_STATUS, gl.INFO_LOG_LENGTH}, f.asked)
}
