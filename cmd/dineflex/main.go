package main

import "github.com/nekogravitycat/dineflex-backend/internal/cli"

func main() {
	cli.Execute()
}
