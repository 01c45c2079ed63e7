package main

import "xpense/cmd"

func main() {
	cmd.Execute()
}
