// Package util holds small file helpers used when logging what data files a process loaded.
package util

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
)

// shortHashLength is the number of hex digits shown in logs.
const shortHashLength = 12

// Fingerprint identifies the exact content of a data file.
type Fingerprint struct {
	Size   int64
	SHA256 string
}

// Short returns the abbreviated checksum used in log lines.
func (f Fingerprint) Short() string {
	if len(f.SHA256) <= shortHashLength {
		return f.SHA256
	}

	return f.SHA256[:shortHashLength]
}

// FileFingerprint hashes the file at filePath and reports its size.
func FileFingerprint(filePath string) (Fingerprint, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return Fingerprint{}, errors.Wrap(err, "failed to open file")
	}
	defer file.Close()

	sha256Hash := sha256.New()

	size, err := io.Copy(sha256Hash, file)
	if err != nil {
		return Fingerprint{}, errors.Wrap(err, "failed to calculate checksum")
	}

	return Fingerprint{
		Size:   size,
		SHA256: hex.EncodeToString(sha256Hash.Sum(nil)),
	}, nil
}

// FormatBytes formats bytes into human readable format.
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	const units = "KMGTPEZY"
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), units[exp])
}
