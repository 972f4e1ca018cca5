package main

import (
	"fmt"
	"os"

	"github.com/danmuck/nibblekit/internal/fileio"
	"github.com/danmuck/nibblekit/internal/observability"
)

func main() {
	observability.InitLogger("nibblectl")
	root := newRootCmd(fileio.OS())
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "nibblectl: %v\n", err)
		os.Exit(1)
	}
}
