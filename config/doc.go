// Package config loads the yaml application configuration and validates it.
package config
