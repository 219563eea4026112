package main

import (
	"fmt"
	"os"
)

// @title Presentation Builder API
// @version 1.0
// @description Generates training plans, content, presentation files and Google Form quizzes.
// @BasePath /
func main() {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
