// cmd/seqscore-check/main.go
package main

import (
	"seqscore/internal/appshell"
	"seqscore/internal/checkapp"
)

func main() { appshell.Main(checkapp.RunContext) }
