package main

import (
	"os"

	"github.com/Benchkram/errz"
	"github.com/puppetlabs/are/cmd"
)

func main() {
	errz.Fatal(cmd.Init(), "Failed to initialize are's config")

	os.Exit(cmd.Execute())
}
