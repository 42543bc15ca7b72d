package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/sikaai/sikaai/internal/i18n"
)

// cmdSignup creates an account and starts a session.
func cmdSignup(args []string) error {
	fs := flag.NewFlagSet("signup", flag.ContinueOnError)
	native := fs.String("native", "ne", "native language code")
	if err := fs.Parse(args); err != nil {
		return err
	}

	rest := fs.Args()
	if len(rest) < 2 {
		return fmt.Errorf("usage: sikaai signup <username> <email> [--native ne]")
	}
	username, email := rest[0], rest[1]

	fmt.Print("Password: ")
	reader := bufio.NewReader(os.Stdin)
	password, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("read password: %w", err)
	}
	password = strings.TrimSpace(password)

	a, err := newApp()
	if err != nil {
		return err
	}

	user, err := a.store.CreateAccount(context.Background(), username, email, password, *native)
	if err != nil {
		return reportStoreError(a, err)
	}

	lang := a.store.Language()
	fmt.Printf("%s\n", i18n.T("welcome", lang))
	fmt.Printf("Signed up as %s (%s)\n", user.Username, user.ID)
	return nil
}

// cmdLogout ends the session and clears local identity.
func cmdLogout() error {
	a, err := newApp()
	if err != nil {
		return err
	}

	a.store.EndSession()
	fmt.Println(i18n.T("logout", a.store.Language()))
	return nil
}

// cmdWhoami shows the active session.
func cmdWhoami() error {
	a, err := newApp()
	if err != nil {
		return err
	}

	user := a.store.User()
	if user == nil {
		fmt.Println("No active session.")
		return nil
	}

	fmt.Printf("User ID:  %s\n", user.ID)
	if user.Username != "" {
		fmt.Printf("Username: %s\n", user.Username)
	}
	if user.Email != "" {
		fmt.Printf("Email:    %s\n", user.Email)
	}
	fmt.Printf("Language: %s\n", a.store.Language())
	return nil
}

// cmdLang shows or sets the display language.
func cmdLang(args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		fmt.Printf("Current language: %s\n", a.store.Language())
		return nil
	}

	switch args[0] {
	case "en", "ne":
		a.store.SetLanguage(langFromCode(args[0]))
	case "toggle":
		a.store.ToggleLanguage()
	default:
		return fmt.Errorf("unknown language: %s (valid: en, ne, toggle)", args[0])
	}

	fmt.Printf("Language set to %s\n", a.store.Language())
	return nil
}

// reportStoreError prefers the store's user-facing message when one was
// recorded for the failed operation.
func reportStoreError(a *app, err error) error {
	if msg := a.store.Err(); msg != "" {
		return fmt.Errorf("%s", msg)
	}
	return err
}
