package util

import (
	"math/rand"
	"sync"
	"time"
	"unsafe"
)

const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
const (
	letterIdxBits = 6                    // 6 bits to represent a letter index
	letterIdxMask = 1<<letterIdxBits - 1 // All 1-bits, as many as letterIdxBits
	letterIdxMax  = 63 / letterIdxBits   // # of letter indices fitting in 63 bits
)

// Sources from rand.NewSource aren't safe for concurrent use and RandStr
// runs on every request, so the source is guarded
var (
	src   = rand.NewSource(time.Now().UnixNano())
	srcMu sync.Mutex
)

// RandStr is the fastest random string generator possible (from what i could find)
// Source: https://stackoverflow.com/questions/22892120/how-to-generate-a-random-string-of-a-fixed-length-in-go
func RandStr(n int) string {
	b := make([]byte, n)

	srcMu.Lock()
	for i, cache, remain := n-1, src.Int63(), letterIdxMax; i >= 0; {
		if remain == 0 {
			cache, remain = src.Int63(), letterIdxMax
		}
		if idx := int(cache & letterIdxMask); idx < len(charset) {
			b[i] = charset[idx]
			i--
		}
		cache >>= letterIdxBits
		remain--
	}
	srcMu.Unlock()

	return *(*string)(unsafe.Pointer(&b))
}
