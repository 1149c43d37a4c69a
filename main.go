package main

import "guidegen/cmd"

func main() {
	cmd.Execute()
}
