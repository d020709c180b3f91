package main

import "github.com/confsync/identiverse-calendar/internal/cli"

func main() {
	cli.Execute()
}
