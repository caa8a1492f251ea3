// cmd/msasnp/main.go
package main

import (
	"msasnp/internal/app"
	"msasnp/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
