// Package cli provides the interactive tradedash command-line client.
//
// It wires configuration, the local token store, the backend request layer
// and the application services, then runs a REPL until the user exits.
// On start the stored session (if any) is restored and a background
// watcher keeps the market price snapshot fresh.
//
// Commands:
//   - signup, login, logout, whoami
//   - prices, coin <symbol>
//   - trade, trades [limit], showtrade <id>
//   - help, exit | quit
//
// Session and trade events arrive as notifications and are printed before
// the next prompt.
package cli
