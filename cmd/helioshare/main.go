package main

import (
	"github.com/helioshare/helioshare/cmd/helioshare/cmd"
)

func main() {
	cmd.Execute()
}
