package main

import "osbot/internal/cli"

func main() {
	cli.Execute()
}
