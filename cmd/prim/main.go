/*
File    : prim/cmd/prim/main.go
*/
package main

import (
	"os"

	"github.com/primlang/prim/cmd/prim/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
