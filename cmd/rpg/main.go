package main

import "github.com/klimvill/RPG-task/cmd/rpg/root"

func main() {
	root.Execute()
}
