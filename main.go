package main

import "fluid-server/cmd"

func main() {
	cmd.Execute()
}
