package main

import (
	"flag"
	"fmt"
	"os"

	"k8s.io/klog/v2"

	"github.com/seqcast/seqcast/cmd/seqcast/app"
)

// seqcast main.
func main() {
	klog.InitFlags(flag.CommandLine)
	defer klog.Flush()

	ctx := app.SetupSignalContext()

	root := app.NewSeqcastCommand(ctx)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
