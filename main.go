package main

import "github.com/theirongolddev/ccb/cmd"

func main() {
	cmd.Execute()
}
