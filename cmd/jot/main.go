package main

import (
	_ "github.com/joho/godotenv/autoload"

	"jot/cmd/jot/cmd"
)

func main() {
	cmd.Execute()
}
