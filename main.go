package main

import "github.com/automoto/sparkle-cursor/cmd"

func main() {
	cmd.Execute()
}
