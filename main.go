package main

import (
	"fmt"
	"os"

	"fjacquet/nexo-cointracker/cmd/combined"
	cmdconfig "fjacquet/nexo-cointracker/cmd/config"
	"fjacquet/nexo-cointracker/cmd/root"
	"fjacquet/nexo-cointracker/cmd/split"
)

func init() {
	root.Cmd.AddCommand(split.Cmd)
	root.Cmd.AddCommand(combined.Cmd)
	root.Cmd.AddCommand(cmdconfig.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
