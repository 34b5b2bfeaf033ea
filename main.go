package main

import (
	"fmt"

	"github.com/swarmlab/swarmtrain/commands"
)

func main() {
	rootCommand := commands.GetRootCommand()
	if err := rootCommand.Execute(); err != nil {
		fmt.Println(err)
	}
}
