// cmd/seqscore-rc/main.go
package main

import (
	"seqscore/internal/appshell"
	"seqscore/internal/rcapp"
)

func main() { appshell.Main(rcapp.RunContext) }
