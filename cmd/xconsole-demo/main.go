package main

import (
	"os"

	"github.com/trickstertwo/xconsole"
)

func main() {
	if err := newRootCmd(xconsole.Global()).Execute(); err != nil {
		os.Exit(1)
	}
}
