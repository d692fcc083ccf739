package main

import (
	"os"

	"github.com/angelbeltran/hxassets/cmd/hxfetch/root"
)

func main() {
	if err := root.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
