package main

import "github.com/kheobs/labsite/cmd"

func main() {
	cmd.Execute()
}
