// Package cli provides the interactive superheroes command-line client.
//
// It wires configuration, the local session store, API services, and an
// interactive REPL around the cookie-session lifecycle: register an account,
// log in, browse the protected gallery, and log out.
//
// Key behavior:
//   - A durable local marker remembers that a login succeeded; the session
//     guard consults it before any protected command touches the network.
//   - The server remains the authority: a rejected session clears the marker
//     and drops the user back to the logged-out prompt.
//   - Failures print short localized messages; detail goes to the log.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
