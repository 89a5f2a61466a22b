package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. *App satisfies
// it; tests use a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Signup(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Prices(ctx context.Context) error
	Coin(ctx context.Context, args []string) error
	Trade(ctx context.Context) error
	Trades(ctx context.Context, args []string) error
	ShowTrade(ctx context.Context, args []string) error
}

const (
	helpLoggedOut = "Available commands: signup, login, prices, coin <symbol>, help, exit"
	helpLoggedIn  = "Available commands: whoami, prices, coin <symbol>, trade, trades [limit], showtrade <id>, logout, help, exit"
)

// runREPL reads one command per line from reader and dispatches it to a.
// The loop ends on EOF, on "exit"/"quit", or when ctx is canceled.
//
// Command errors are printed and never stop the loop; handlers have already
// surfaced session and trade failures as notifications, so only errors the
// user has not seen yet are worth printing.
func runREPL(ctx context.Context, a execIface, promptFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("tradedash (%s)> ", promptFn()))

		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}

		case "signup", "register":
			cmdErr = a.Signup(ctx)

		case "login":
			cmdErr = a.Login(ctx)

		case "logout":
			cmdErr = a.Logout(ctx)

		case "whoami":
			cmdErr = a.WhoAmI(ctx)

		case "prices", "p":
			cmdErr = a.Prices(ctx)

		case "coin":
			cmdErr = a.Coin(ctx, args)

		case "trade":
			cmdErr = a.Trade(ctx)

		case "trades":
			cmdErr = a.Trades(ctx, args)

		case "showtrade":
			cmdErr = a.ShowTrade(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil && !errors.Is(cmdErr, errReported) {
			printlnFn("Error:", cmdErr)
		}
	}
}

// errReported marks a failure the user was already told about.
var errReported = errors.New("reported")

// reported wraps err so the REPL does not print it a second time.
func reported(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", errReported, err)
}
