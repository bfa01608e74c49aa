// Package zerolog implements a console backed by github.com/rs/zerolog.
package zerolog
