package main

import "questboard/cmd/qb/root"

func main() {
	root.Execute()
}
