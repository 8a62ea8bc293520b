package main

import "microdrop-launcher/internal/cli"

func main() {
	cli.Execute()
}
