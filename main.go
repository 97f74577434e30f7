package main

import "emote-manager/cmd"

func main() {
	cmd.Execute()
}
