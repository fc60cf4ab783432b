package main

import (
	"fmt"
	"os"

	"github.com/lixenwraith/uifocus/core"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "uifocus: %v\n", err)
		os.Exit(1)
	}
}
