package main

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

func encodeBytes(b []byte) (string, error) {
	switch encodingFlag {
	case "hex":
		return hex.EncodeToString(b), nil
	case "base64":
		return base64.StdEncoding.EncodeToString(b), nil
	default:
		return "", fmt.Errorf("unknown encoding %q", encodingFlag)
	}
}

func decodeBytes(s string) ([]byte, error) {
	switch encodingFlag {
	case "hex":
		return hex.DecodeString(s)
	case "base64":
		return base64.StdEncoding.DecodeString(s)
	default:
		return nil, fmt.Errorf("unknown encoding %q", encodingFlag)
	}
}

func readEncodedFile(path string) ([]byte, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return decodeBytes(trimTrailingNewline(data))
}
