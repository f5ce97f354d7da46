// Package config defines the application configuration structure and its
// loader. Every setting has a default, so the server starts with no
// environment variables and no config file present.
package config
