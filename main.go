package main

import (
	"github.com/espeer/zep-kvs/cmd"
)

func main() {
	cmd.Execute()
}
