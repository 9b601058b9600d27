package main

import "github.com/abdul-hamid-achik/httpie/apps/cli/cmd"

var (
	version   = "1.0"
	buildTime = "unknown"
)

func main() {
	cmd.Execute(version, buildTime)
}
