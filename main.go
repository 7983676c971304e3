package main

import "github.com/emberprep/qlint/cmd"

func main() {
	cmd.Execute()
}
