package main

import (
	"ncaa-savior/cli"
)

func main() {
	cli.Start()
}
