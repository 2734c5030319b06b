package main

import "github.com/tessro/feedcast/internal/cli"

func main() {
	cli.Execute()
}
