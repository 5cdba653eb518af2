// Package config loads, merges and validates the application configuration.
//
// Sources, from lowest to highest priority (non-zero fields of a later
// source override earlier ones):
//  1. Built-in defaults
//  2. JSON config file (-c/-config flag or CONFIG variable)
//  3. Environment variables
//  4. Command-line flags
//
// [GetStructuredConfig] validates with the server rules, [GetClientConfig]
// with the terminal client rules and [GetTokenConfig] with the token tool
// rules.
package config
