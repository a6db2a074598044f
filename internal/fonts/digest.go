package fonts

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
)

// Digest returns the hex-encoded SHA-256 digest of data
func Digest(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// DigestFile returns the hex-encoded SHA-256 digest of the file at path,
// streaming the content instead of loading it into memory
func DigestFile(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	hasher := sha256.New()
	if _, err := io.Copy(hasher, file); err != nil {
		return "", err
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}
