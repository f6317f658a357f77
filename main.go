package main

import "github.com/traininglab/exlink/cmd"

func main() {
	cmd.Execute()
}
