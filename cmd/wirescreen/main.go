package main

import (
	"os"

	"github.com/wirescreen/wirescreen-go/internal/app"
)

func main() {
	os.Exit(app.Main(os.Args[1:]))
}
