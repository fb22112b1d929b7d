package main

import "sudan-mm-collector/cmd"

func main() {
	cmd.Execute()
}
