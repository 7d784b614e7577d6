package main

import "docsearch/cmd"

func main() {
	cmd.Execute()
}
