// cmd/fasta/main.go
package main

import (
	"fasta/internal/app"
	"fasta/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
