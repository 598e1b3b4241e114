package main

import "pot-portal/cmd"

func main() {
	cmd.Execute()
}
