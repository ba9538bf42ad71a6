// Package main implements roccatool, a command-line wrapper around the
// rocca package for ad hoc sealing/opening and throughput comparison.
// The core rocca package has no CLI, logging, or benchmarking of its own;
// those are external collaborators, and this binary is one of them.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
)

// Options holds the flags shared by roccatool's subcommands.
type Options struct {
	// Mode selects the subcommand: "seal", "open", or "bench".
	Mode string

	// KeyHex is the hex-encoded KeySize-byte key.
	KeyHex string

	// NonceHex is the hex-encoded NonceSize-byte nonce.
	NonceHex string

	// InputHex is the hex-encoded plaintext (seal) or ciphertext (open).
	InputHex string

	// ADHex is the hex-encoded associated data.
	ADHex string

	// BenchSize is the plaintext size in bytes used by the bench subcommand.
	BenchSize int

	// Verbose enables debug-level logging.
	Verbose bool
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Mode:      "seal",
		BenchSize: 8192,
	}
}

// ParseFlags parses the standard roccatool flags and returns Options.
//
//	-mode    seal | open | bench (default: seal)
//	-key     hex-encoded key (required for seal/open)
//	-nonce   hex-encoded nonce (required for seal/open)
//	-in      hex-encoded input: plaintext for seal, ciphertext for open
//	-ad      hex-encoded associated data (default: empty)
//	-size    plaintext size in bytes for bench (default: 8192)
//	-v       enable debug logging
func ParseFlags() Options {
	defaults := DefaultOptions()
	o := Options{}

	flag.StringVar(&o.Mode, "mode", defaults.Mode, "seal | open | bench")
	flag.StringVar(&o.KeyHex, "key", "", "hex-encoded key")
	flag.StringVar(&o.NonceHex, "nonce", "", "hex-encoded nonce")
	flag.StringVar(&o.InputHex, "in", "", "hex-encoded plaintext (seal) or ciphertext (open)")
	flag.StringVar(&o.ADHex, "ad", "", "hex-encoded associated data")
	flag.IntVar(&o.BenchSize, "size", defaults.BenchSize, "plaintext size in bytes for bench mode")
	flag.BoolVar(&o.Verbose, "v", false, "enable debug logging")

	flag.Parse()
	return o
}

func decodeHexFlag(name, s string) ([]byte, error) {
	if s == "" {
		return nil, nil
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("-%s: %w", name, err)
	}
	return b, nil
}
