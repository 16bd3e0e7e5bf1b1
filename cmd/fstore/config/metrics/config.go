package metricsconfig

import (
	"github.com/mitchellh/go-homedir"
	"github.com/nspcc-dev/filestorage/cmd/fstore/config"
)

// Textfile returns the value of "textfile" config parameter
// from "metrics" section with "~" expanded.
//
// Metrics are not exported if the value is empty.
func Textfile(c *config.Config) (string, error) {
	p := config.StringSafe(c.Sub("metrics"), "textfile")
	if p == "" {
		return "", nil
	}
	return homedir.Expand(p)
}
