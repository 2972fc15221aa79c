// Package app implements the command execution logic behind the CLI.
// Each Execute function wires configuration defaults into the library
// packages, runs one operation, and prints the result to standard output.
package app
