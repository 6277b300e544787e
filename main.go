package main

import "github.com/beezer-app/beezer/internal/cli"

func main() {
	cli.Execute()
}
