package main

import "wemtool/cmd/wemtool-cli/cmd"

func main() {
	cmd.Execute()
}
