package compactorconfig

import (
	"runtime"

	"github.com/nspcc-dev/filestorage/cmd/fstore/config"
)

// Workers returns the value of "workers" config parameter
// from "compactor" section.
//
// Returns the number of CPUs if the value is missing or not positive.
func Workers(c *config.Config) int {
	v := config.IntSafe(c.Sub("compactor"), "workers")
	if v > 0 {
		return int(v)
	}
	return runtime.NumCPU()
}
