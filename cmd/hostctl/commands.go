package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"hostdeck/config"
	"hostdeck/infras/jwt"
	"hostdeck/infras/otel"
	"hostdeck/infras/postgres"
	"hostdeck/internal/domains/auth/model/dto"
	authService "hostdeck/internal/domains/auth/service"
	hostRepository "hostdeck/internal/domains/host/repository"
	"hostdeck/shared/logger"
	"hostdeck/shared/password"
	"hostdeck/shared/validator"

	"golang.org/x/term"
)

const minPasswordLength = 8

var (
	errPasswordMismatch = errors.New("passwords do not match")
	errPasswordTooShort = fmt.Errorf("password must be at least %d characters", minPasswordLength)
)

func checkPassword(pass, confirm string) error {
	if len(pass) < minPasswordLength {
		return errPasswordTooShort
	}

	if pass != confirm {
		return errPasswordMismatch
	}

	return nil
}

func readPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		var line string
		if _, err := fmt.Fscanln(os.Stdin, &line); err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}

		return line, nil
	}

	secret, err := term.ReadPassword(fd)

	fmt.Fprintln(os.Stderr)

	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	return string(secret), nil
}

func promptNewPassword() (string, error) {
	pass, err := readPassword("Enter password:   ")
	if err != nil {
		return "", err
	}

	confirm, err := readPassword("Confirm password: ")
	if err != nil {
		return "", err
	}

	if err = checkPassword(pass, confirm); err != nil {
		return "", err
	}

	return pass, nil
}

func createHost(args []string) error {
	fs := flag.NewFlagSet("create-host", flag.ExitOnError)
	email := fs.String("email", "", "Email address of the host (required)")
	name := fs.String("name", "", "Full name of the host")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: hostctl create-host -email EMAIL [-name NAME]\n\n")
		fmt.Fprintf(os.Stderr, "The password is read from the terminal without echo.\n\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	pass, err := promptNewPassword()
	if err != nil {
		return err
	}

	req := dto.RegisterRequest{Email: *email, Password: pass}
	if *name != "" {
		req.FullName = name
	}

	if err = validator.ValidateStruct(&req); err != nil {
		return err
	}

	cfg := config.Get()
	logger.SetLogLevel(cfg)

	otl := otel.New(cfg)
	defer func() { _ = otl.Shutdown(context.Background()) }()

	db := postgres.New(cfg)
	defer db.Close()

	svc := authService.New(hostRepository.New(db, otl), otl, jwt.New(cfg, otl))

	if err = svc.Register(context.Background(), req); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Host %s created\n", req.Email)

	return nil
}

func hashPassword(args []string) error {
	fs := flag.NewFlagSet("hash-password", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: hostctl hash-password\n\n")
		fmt.Fprintf(os.Stderr, "Prints the bcrypt hash stored in hosts.password.\n")
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	pass, err := promptNewPassword()
	if err != nil {
		return err
	}

	hash, err := password.Hash(pass)
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, hash)

	return nil
}
