package main

import (
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/pion/logging"
	"github.com/rocca-go/rocca/rocca"
	"golang.org/x/crypto/chacha20poly1305"
)

func main() {
	opts := ParseFlags()

	loggerFactory := logging.NewDefaultLoggerFactory()
	if opts.Verbose {
		loggerFactory.DefaultLogLevel = logging.LogLevelDebug
	}
	logger := loggerFactory.NewLogger("roccatool")

	var err error
	switch opts.Mode {
	case "seal":
		err = runSeal(logger, opts)
	case "open":
		err = runOpen(logger, opts)
	case "bench":
		err = runBench(logger, opts)
	default:
		err = fmt.Errorf("unknown -mode %q, want seal, open, or bench", opts.Mode)
	}
	if err != nil {
		log.Fatalf("roccatool: %v", err)
	}
}

func runSeal(logger logging.LeveledLogger, opts Options) error {
	key, err := decodeHexFlag("key", opts.KeyHex)
	if err != nil {
		return err
	}
	nonce, err := decodeHexFlag("nonce", opts.NonceHex)
	if err != nil {
		return err
	}
	plaintext, err := decodeHexFlag("in", opts.InputHex)
	if err != nil {
		return err
	}
	ad, err := decodeHexFlag("ad", opts.ADHex)
	if err != nil {
		return err
	}

	logger.Debugf("sealing %d plaintext bytes with %d AD bytes", len(plaintext), len(ad))

	dst := make([]byte, len(plaintext)+rocca.Overhead)
	ciphertext, ok := rocca.Seal(dst, key, nonce, plaintext, ad)
	if !ok {
		return fmt.Errorf("seal failed: check key is %d bytes and nonce is %d bytes", rocca.KeySize, rocca.NonceSize)
	}

	fmt.Fprintln(os.Stdout, hexDump(ciphertext))
	return nil
}

func runOpen(logger logging.LeveledLogger, opts Options) error {
	key, err := decodeHexFlag("key", opts.KeyHex)
	if err != nil {
		return err
	}
	nonce, err := decodeHexFlag("nonce", opts.NonceHex)
	if err != nil {
		return err
	}
	ciphertext, err := decodeHexFlag("in", opts.InputHex)
	if err != nil {
		return err
	}
	ad, err := decodeHexFlag("ad", opts.ADHex)
	if err != nil {
		return err
	}

	logger.Debugf("opening %d ciphertext bytes with %d AD bytes", len(ciphertext), len(ad))

	dst := make([]byte, max(0, len(ciphertext)-rocca.Overhead))
	plaintext, ok := rocca.Open(dst, key, nonce, ciphertext, ad)
	if !ok {
		return fmt.Errorf("open failed: authentication failure or bad argument shape")
	}

	fmt.Fprintln(os.Stdout, hexDump(plaintext))
	return nil
}

// runBench compares Rocca against chacha20poly1305 throughput on
// opts.BenchSize plaintext bytes for roughly one second each. The two
// AEADs are unrelated constructions; this is a throughput sanity check,
// not a claim of interchangeability.
func runBench(logger logging.LeveledLogger, opts Options) error {
	runID := uuid.New()
	logger.Infof("bench run %s: plaintext size %d bytes", runID, opts.BenchSize)

	key := make([]byte, rocca.KeySize)
	nonce := make([]byte, rocca.NonceSize)
	if _, err := rand.Read(key); err != nil {
		return err
	}
	if _, err := rand.Read(nonce); err != nil {
		return err
	}
	plaintext := make([]byte, opts.BenchSize)
	if _, err := rand.Read(plaintext); err != nil {
		return err
	}

	roccaRate, err := benchmarkRocca(key, nonce, plaintext)
	if err != nil {
		return err
	}
	logger.Infof("run %s: rocca      %.2f MB/s", runID, roccaRate)

	chachaKey := make([]byte, chacha20poly1305.KeySize)
	if _, err := rand.Read(chachaKey); err != nil {
		return err
	}
	chachaAEAD, err := chacha20poly1305.New(chachaKey)
	if err != nil {
		return err
	}
	chachaNonce := make([]byte, chachaAEAD.NonceSize())
	if _, err := rand.Read(chachaNonce); err != nil {
		return err
	}
	chachaRate := benchmarkAEAD(chachaAEAD, chachaNonce, plaintext)
	logger.Infof("run %s: chacha20poly1305 %.2f MB/s", runID, chachaRate)

	return nil
}

func benchmarkRocca(key, nonce, plaintext []byte) (float64, error) {
	dst := make([]byte, len(plaintext)+rocca.Overhead)
	start := time.Now()
	iters := 0
	for time.Since(start) < time.Second {
		if _, ok := rocca.Seal(dst, key, nonce, plaintext, nil); !ok {
			return 0, fmt.Errorf("bench: rocca seal failed")
		}
		iters++
	}
	return megabytesPerSecond(len(plaintext), iters, time.Since(start)), nil
}

func benchmarkAEAD(a cipher.AEAD, nonce, plaintext []byte) float64 {
	dst := make([]byte, 0, len(plaintext)+a.Overhead())
	start := time.Now()
	iters := 0
	for time.Since(start) < time.Second {
		_ = a.Seal(dst[:0], nonce, plaintext, nil)
		iters++
	}
	return megabytesPerSecond(len(plaintext), iters, time.Since(start))
}

func megabytesPerSecond(size, iters int, elapsed time.Duration) float64 {
	const oneMegabyte = 1024 * 1024
	total := float64(size) * float64(iters)
	return total / oneMegabyte / elapsed.Seconds()
}

func hexDump(b []byte) string {
	const hextable = "0123456789abcdef"
	out := make([]byte, 0, len(b)*2+len(b)/16)
	for i, v := range b {
		if i > 0 && i%16 == 0 {
			out = append(out, ' ')
		}
		out = append(out, hextable[v>>4], hextable[v&0x0f])
	}
	return string(out)
}
