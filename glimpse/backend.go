package glimpse

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/oliverbestmann/glview/orion"
)

func init() {
	// glfw must be called from the main thread
	runtime.LockOSThread()
}

// Backend opens native windows using glfw. All methods must be
// called from the main goroutine.
type Backend struct {
	initialized bool
}

func NewBackend() *Backend {
	return &Backend{}
}

func (b *Backend) Init() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("initialize glfw: %w", err)
	}

	b.initialized = true

	return nil
}

func (b *Backend) CreateWindow(width, height int, title string) (orion.Window, error) {
	if !b.initialized {
		return nil, fmt.Errorf("glfw not initialized")
	}

	return newWindow(width, height, title)
}

func (b *Backend) PollEvents() {
	glfw.PollEvents()
}

func (b *Backend) Terminate() {
	if b.initialized {
		glfw.Terminate()
		b.initialized = false
	}
}
