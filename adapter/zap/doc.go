// Package zap implements a console backed by go.uber.org/zap.
package zap
