package main

import (
	"os"

	"github.com/viant/intmap/cmd"
)

func main() {
	cmd.Run(os.Args[1:])
}
