package main

import (
	"xtvkit/cli"
)

func main() {
	cli.Start()
}
