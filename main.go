package main

import "icoltex-hub/cmd"

func main() {
	cmd.Execute()
}
