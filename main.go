package main

import "hero-catalog/cmd"

func main() {
	cmd.Execute()
}
