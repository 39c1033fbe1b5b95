package main

import (
	"github.com/mchmarny/vocab/pkg/cli"
)

func main() {
	cli.Execute()
}
