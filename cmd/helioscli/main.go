package main

import (
	"github.com/helioshare/helioshare/cmd/helioscli/cmd"
)

func main() {
	cmd.Execute()
}
