package main

import "github.com/cistrome/scflow/cmd/scflow/cmd"

func main() {
	cmd.Run()
}
