package main

import "github.com/itsmostafa/gocalc/cmd"

func main() {
	cmd.Execute()
}
