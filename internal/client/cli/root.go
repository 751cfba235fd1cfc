package cli

import (
	"context"
	"fmt"
	"strings"
)

// Root is the popup loop. Each command is awaited before the next line is
// read, so operations triggered by sequential gestures run in order and at
// most one remote call is outstanding at a time.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "linkvault (type 'help' for commands)")

	for {
		a.renderBanner()

		fmt.Fprintf(a.out, "linkvault %s> ", a.statusLine())
		line, err := a.reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(a.out, "Available commands: list, select <n>, save, open, logout, exit")
			} else {
				fmt.Fprintln(a.out, "Available commands: login, exit")
			}
		case "login":
			a.login(ctx)
		case "logout":
			a.logout(ctx)
		case "list":
			a.refreshVaults(ctx)
		case "select":
			a.selectVault(args)
		case "save":
			a.save(ctx)
		case "open":
			a.open(ctx)
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}

// renderBanner projects the status banner and drops it again if it was a
// transient success message.
func (a *App) renderBanner() {
	switch a.state.Banner.Kind {
	case BannerSuccess:
		fmt.Fprintln(a.out, a.state.Banner.Text)
	case BannerError:
		fmt.Fprintln(a.out, "error:", a.state.Banner.Text)
	}
	a.state = a.state.ClearTransientBanner()
}

func (a *App) statusLine() string {
	if !a.isLoggedIn() {
		return ""
	}
	s := a.state.Session.Email
	if v, ok := a.state.SelectedVault(); ok {
		s += " [" + v.Name + "]"
	}
	return "(" + s + ") "
}
