package main

import (
	"fmt"
	"os"

	"hostdeck/shared/logger"
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: hostctl <command> [OPTIONS]\n\n")
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  create-host     Register a host account in the configured database\n")
	fmt.Fprintf(os.Stderr, "  hash-password   Print the bcrypt hash of a password\n")
}

func main() {
	logger.InitLogger()

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error

	switch os.Args[1] {
	case "create-host":
		err = createHost(os.Args[2:])
	case "hash-password":
		err = hashPassword(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
