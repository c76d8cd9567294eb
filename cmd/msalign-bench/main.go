// cmd/msalign-bench/main.go
package main

import (
	"msalign/internal/appshell"
	"msalign/internal/benchapp"
)

func main() {
	appshell.Main(benchapp.RunContext)
}
