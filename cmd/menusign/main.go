package main

import "github.com/example/menusign/cmd"

func main() {
	cmd.Execute()
}
