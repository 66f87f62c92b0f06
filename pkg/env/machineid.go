package env

import (
	"os"

	"github.com/denisbrodbeck/machineid"
)

// MachineID retrieves the unique ID identifying the machine, falling back
// to the hostname where no machine ID is available.
func MachineID() string {
	if id, err := machineid.ProtectedID("mazebot"); err == nil {
		return id[:12]
	}
	if host, err := os.Hostname(); err == nil {
		return host
	}
	return "unknown"
}
