package main

import (
	"os"

	"github.com/neutron-org/gravity-relayer/cmd/gravity_relayer/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
