package main

import "github.com/alexiusacademia/gorcfiber/cmd"

func main() {
	cmd.Execute()
}
