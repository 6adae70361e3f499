package command

import (
	"fmt"
	"sync"
)

// Exactly one live insert-header registration is allowed per host session. The
// host calls Register during init and Unregister on shutdown.
var (
	registryMu sync.Mutex
	registered *InsertHeader
)

// Register installs the command as the process-wide instance. Registering a
// second command without unregistering the first is an error.
func Register(cmd *InsertHeader) error {
	registryMu.Lock()
	defer registryMu.Unlock()
	if registered != nil {
		return fmt.Errorf("insert-header command is already registered")
	}
	if cmd == nil {
		return fmt.Errorf("cannot register a nil command")
	}
	registered = cmd
	return nil
}

// Registered returns the current process-wide command, if any.
func Registered() (*InsertHeader, bool) {
	registryMu.Lock()
	defer registryMu.Unlock()
	return registered, registered != nil
}

// Unregister removes the process-wide command. Safe to call when nothing is
// registered.
func Unregister() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registered = nil
}
