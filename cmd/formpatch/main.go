package main

import "github.com/cbout22/formpatch/internal/cli"

func main() {
	cli.Execute()
}
