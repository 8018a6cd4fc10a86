package main

import (
	"github.com/c9s/ta/pkg/cmd"
)

func main() {
	cmd.Execute()
}
