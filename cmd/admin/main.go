package main

import (
	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"

	"player-registry/internal/cli"
)

func main() {
	_ = godotenv.Load()
	cli.Execute()
}
