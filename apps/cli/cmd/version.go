package cmd

var (
	version   = "1.0"
	buildTime = "unknown"
)

const versionTemplate = `{{.Name}} {{.Version}}
`

const author = "cal"
