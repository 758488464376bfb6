// cmd/fastj/main.go
package main

import (
	"fastj/internal/app"
	"fastj/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
