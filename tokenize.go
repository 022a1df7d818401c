package embeddedcli

// TokenizeArgs rewrites a space-separated line in place into a token blob:
// the tokens of b packed front-to-back, separated by single NUL bytes.
// Leading, trailing and repeated separators are removed. The returned slice
// aliases b. Tokenizing is destructive and idempotent: applying it to its own
// output is a no-op.
func TokenizeArgs(b []byte) []byte {
	if b == nil {
		return nil
	}
	w := 0
	r := 0
	for {
		for r < len(b) && b[r] == ' ' {
			r++
		}
		if r >= len(b) {
			break
		}
		if w > 0 {
			b[w] = 0
			w++
		}
		for r < len(b) && b[r] != ' ' {
			b[w] = b[r]
			w++
			r++
		}
	}
	return b[:w]
}

// GetToken returns the idx-th token of a blob produced by TokenizeArgs, or
// nil when idx is out of range. Tokens are found by linear scan.
func GetToken(blob []byte, idx int) []byte {
	if len(blob) == 0 || idx < 0 {
		return nil
	}
	start := 0
	for i := 0; i <= len(blob); i++ {
		if i < len(blob) && blob[i] != 0 {
			continue
		}
		if idx == 0 {
			return blob[start:i]
		}
		idx--
		start = i + 1
	}
	return nil
}

// GetTokenCount returns the number of tokens in a blob produced by
// TokenizeArgs.
func GetTokenCount(blob []byte) int {
	if len(blob) == 0 {
		return 0
	}
	n := 1
	for _, b := range blob {
		if b == 0 {
			n++
		}
	}
	return n
}
