package main

import "github.com/ManahilHabibb/DraftAI/cmd"

func main() {
	cmd.Execute()
}
