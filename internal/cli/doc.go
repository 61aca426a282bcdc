// Package cli provides the interactive course tutor command line.
//
// It wires configuration, the encrypted record store, the chapter content,
// and an interactive REPL. Typical flow: register or sign in, then work
// through chapters from the learning portal until the course is completed
// and the certificate is issued.
//
// Key commands:
//   - register / login / reset — account management
//   - learn     — present a chapter and run its quiz
//   - progress  — detailed progress statistics
//   - settings  — per-student preferences
//   - cert      — reprint the completion certificate
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
