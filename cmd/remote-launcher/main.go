package main

import "remote-launcher/internal/cli"

func main() {
	cli.Execute()
}
