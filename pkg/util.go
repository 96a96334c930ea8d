package pkg

import (
	"crypto/rand"
	"encoding/base64"
	"net/http"
	"os"
	"strings"
	"unsafe"
)

// BytesToString converts the byte slice without copying the data.
// The caller must not mutate buf afterwards.
func BytesToString(buf []byte) string {
	return *(*string)(unsafe.Pointer(&buf))
}

// GenerateRandomBytes returns securely generated random bytes.
// It will return an error if the system's secure random
// number generator fails to function correctly, in which
// case the caller should not continue
func GenerateRandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, err
	}
	return b, nil
}

// GenerateRandomString returns a URL-safe, base64 encoded
// securely generated random string.
func GenerateRandomString(s int) (string, error) {
	b, err := GenerateRandomBytes(s)
	return base64.URLEncoding.EncodeToString(b), err
}

// PathExists returns whether the given file or directory exists
func PathExists(path string, isDir bool) (bool, error) {
	stat, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	if (isDir && stat.IsDir()) || (!isDir && !stat.IsDir()) {
		return true, nil
	}
	return false, err
}

// ReadUserIP tries to get the real client IP, looking at the
// forwarding headers before falling back to the remote address
func ReadUserIP(r *http.Request) (string, error) {
	ipAddress := r.Header.Get("X-Real-Ip")
	if ipAddress == "" {
		ipAddress = r.Header.Get("X-Forwarded-For")
	}
	if ipAddress == "" {
		ipAddress = r.RemoteAddr
	}
	if colon := strings.LastIndex(ipAddress, ":"); colon > 0 && strings.Count(ipAddress, ":") == 1 {
		ipAddress = ipAddress[:colon]
	}
	return ipAddress, nil
}
