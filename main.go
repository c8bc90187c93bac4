package main

import "github.com/xvierd/gitline/cmd"

func main() {
	cmd.Execute()
}
