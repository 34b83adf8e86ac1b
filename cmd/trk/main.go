package main

import "github.com/jai-bhavaani/new-tracker/cmd/trk/root"

func main() {
	root.Execute()
}
