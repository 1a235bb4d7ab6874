package main

import (
	"github.com/runjot/runjot/cmd"
)

func main() {
	cmd.Execute()
}
