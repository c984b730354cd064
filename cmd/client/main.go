package main

import "blogkeeper/cmd/client/cmd"

func main() {
	cmd.Execute()
}
