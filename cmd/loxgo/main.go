package main

import (
	"os"

	"github.com/loxlang/loxgo/cmd/loxgo/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
