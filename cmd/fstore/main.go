package main

import (
	"github.com/nspcc-dev/filestorage/cmd/internal/cmderr"
)

func main() {
	err := newRootCommand().Execute()
	cmderr.ExitOnErr(err)
}
