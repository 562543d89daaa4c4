package main

import "github.com/toba/ghtask/cmd"

func main() {
	cmd.Execute()
}
