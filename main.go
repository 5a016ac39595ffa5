package main

import "github.com/mirkit/miditect/cmd"

func main() {
	cmd.Execute()
}
