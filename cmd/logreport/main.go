package main

import "log-report/internal/cmd"

func main() {
	cmd.Execute()
}
