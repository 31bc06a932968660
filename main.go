package main

import "github.com/mkress81/arbscout/cmd"

func main() {
	cmd.Execute()
}
