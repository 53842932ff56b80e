package main

import (
	"fmt"
	"os"

	"github.com/klwxsrx/go-token-service/internal/tokenctl"
)

func main() {
	err := tokenctl.NewApp(os.Stdout).Run(os.Args)
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
