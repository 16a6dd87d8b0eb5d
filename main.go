package main

import (
	"MerlinsForkAPI/cmd"
	"MerlinsForkAPI/internal/pkg/logger"
)

func main() {
	defer logger.Sync()
	cmd.Execute()
}
