package main

import "minipress/cmd"

func main() {
	cmd.Execute()
}
