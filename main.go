package main

import "github.com/stovetop-games/brigade/cmd"

func main() {
	cmd.Execute()
}
