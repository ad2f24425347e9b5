package gpu

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrContextLost is reported when the driver reset or lost the context
	ErrContextLost = errors.New("gpu: graphics context lost")
	// ErrOutOfMemory is reported when the driver could not allocate storage
	ErrOutOfMemory = errors.New("gpu: out of memory")
)

// CompileError carries the driver diagnostic of a failed shader stage
type CompileError struct {
	Stage ShaderStage
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("failed to compile %s shader: %s", e.Stage, strings.TrimRight(e.Log, "\x00\n "))
}

// LinkError carries the driver diagnostic of a failed program link
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return "failed to link program: " + strings.TrimRight(e.Log, "\x00\n ")
}

// GLError is any other error code reported by the context
type GLError struct {
	Code uint32
}

func (e *GLError) Error() string {
	return fmt.Sprintf("gpu: gl error 0x%04x", e.Code)
}
