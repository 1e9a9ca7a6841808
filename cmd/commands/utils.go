package commands

import (
	"fmt"
	"os"

	"inkwell/pkg/logger"
)

const usage = `usage: inkwell <command> [arguments]

commands:
  run <config path>   start the blog server
  version             print the build version
  help                print this message
`

func HandleHelp(_ []string) {
	fmt.Print(usage) //nolint
}

func ExitOnError(err error) {
	logger.Error("inkwell error", "err", err.Error())
	os.Exit(1)
}
