// cmd/msalign/main.go
package main

import (
	"msalign/internal/app"
	"msalign/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
