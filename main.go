package main

import (
	"os"

	"github.com/thenoetrevino/dreamscape/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
