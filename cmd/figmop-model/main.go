// cmd/figmop-model/main.go
package main

import (
	"figmop/internal/app"
	"figmop/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
