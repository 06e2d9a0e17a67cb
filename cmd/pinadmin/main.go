package main

import (
	"github.com/aixtraball/pinadmin/internal/cli"
)

func main() {
	cli.Execute()
}
