package main

import "github.com/corpdata/registryd/cmd/registryd/cmd"

func main() {
	cmd.Execute()
}
