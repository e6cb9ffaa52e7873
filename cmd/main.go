package main

import (
	"fmt"
	"os"

	"hummify/internal/actions"
)

func main() {
	app := actions.NewApp()

	err := app.Run(os.Args)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
