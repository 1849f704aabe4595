package main

import (
	"os"
	"strings"
)

func readFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func trimTrailingNewline(s string) string {
	return strings.TrimRight(s, "\r\n")
}

func writeFile(path string, contents string) error {
	return os.WriteFile(path, []byte(contents+"\n"), 0600)
}
