package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// A .env file is optional; real environment variables win.
	_ = godotenv.Load()

	a := newApp()
	err := newRootCmd(a).ExecuteContext(context.Background())
	a.close()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
