package app

import (
	"bytes"
	"os"
	"sync"
	"testing"

	"github.com/vk/dungeon/internal/registry"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// StubModule registers a module whose entry records every invocation and
// returns Code.
type StubModule struct {
	Descriptor registry.Descriptor
	Code       int
	Calls      []StubCall
}

// StubCall is one recorded entry invocation.
type StubCall struct {
	Filename string
	Args     []string
}

// Register implements registry.Module.
func (m *StubModule) Register(r *registry.Registry) {
	r.Register(&registry.Registration{
		Descriptor: m.Descriptor,
		Entry: func(filename string, args []string) int {
			m.Calls = append(m.Calls, StubCall{Filename: filename, Args: args})
			return m.Code
		},
	})
}

// SetupAppTest creates a new app instance for system testing.
func SetupAppTest(t *testing.T, appConfig *Config, modules ...registry.Module) (*App, *SafeBuffer) {
	t.Helper()

	logBuffer := &SafeBuffer{}
	appConfig.LogLevel = "debug"
	testApp := NewApp(logBuffer, appConfig, modules...)

	t.Cleanup(func() {
		if os.Getenv("DUNGEON_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	return testApp, logBuffer
}
