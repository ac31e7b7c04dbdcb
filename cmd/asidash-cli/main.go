package main

import "github.com/nfrund/asidash/cmd/asidash-cli/cmd"

func main() {
	cmd.Execute()
}
