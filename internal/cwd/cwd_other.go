//go:build !windows
// +build !windows

package cwd

import "os"

func Current() (string, error) {
	return os.Getwd()
}
