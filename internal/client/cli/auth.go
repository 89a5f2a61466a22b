package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/tradedash/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

var errFieldsRequired = errors.New("email and password are required")

// Signup asks for email, password and display name, registers the account
// and logs in with the same credentials. The outcome is reported through
// session notifications.
func (a *App) Signup(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter your name", a.out)
	if err != nil {
		return err
	}
	email, password, err := a.askCredentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	return reported(a.session.Signup(ctx, email, string(password), name))
}

// Login asks for credentials and starts a session.
func (a *App) Login(ctx context.Context) error {
	email, password, err := a.askCredentials()
	if err != nil {
		return err
	}
	// The session API takes a string, so only the terminal buffer is wiped.
	defer common.WipeByteArray(password)

	return reported(a.session.Login(ctx, email, string(password)))
}

func (a *App) askCredentials() (string, []byte, error) {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return "", nil, err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return "", nil, err
	}
	if email == "" || len(password) == 0 {
		common.WipeByteArray(password)
		return "", nil, errFieldsRequired
	}
	if !strings.Contains(email, "@") {
		common.WipeByteArray(password)
		return "", nil, fmt.Errorf("%q is not an email address", email)
	}
	return email, password, nil
}

// Logout ends the session. It always succeeds.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	return nil
}

// WhoAmI prints the authenticated user.
func (a *App) WhoAmI(context.Context) error {
	u, ok := a.session.User()
	if !ok {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}
	fmt.Fprintf(a.out, "%s <%s> (id %s)\n", u.Name, u.Email, u.ID)
	return nil
}
