package main

import "github.com/askiada/go-lineedit/internal/cli"

func main() {
	cli.Main()
}
