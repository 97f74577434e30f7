// Package config loads the application configuration from environment
// variables and an optional .env file.
//
// Defaults come from 'default:' struct tags; environment variables map to
// nested keys by replacing dots with underscores (SERVER_PORT -> server.port).
package config
