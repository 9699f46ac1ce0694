package keygen

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"
	"fmt"
)

const hardened = uint32(0x80000000)

// accountPath is the standard Solana derivation path m/44'/501'/0'/0'.
var accountPath = []uint32{
	44 | hardened,
	501 | hardened,
	0 | hardened,
	0 | hardened,
}

// deriveAccountSeed walks the SLIP-10 ed25519 hierarchy from a BIP-39
// seed down to the account node and returns its 32-byte key.
func deriveAccountSeed(seed []byte) ([]byte, error) {
	if len(seed) < 16 {
		return nil, fmt.Errorf("seed too short: %d bytes", len(seed))
	}

	h := hmac.New(sha512.New, []byte("ed25519 seed"))
	h.Write(seed)
	sum := h.Sum(nil)

	key := sum[:32]
	chainCode := sum[32:]

	for _, index := range accountPath {
		// ed25519 supports hardened derivation only
		data := make([]byte, 37)
		data[0] = 0x00
		copy(data[1:33], key)
		binary.BigEndian.PutUint32(data[33:], index)

		h := hmac.New(sha512.New, chainCode)
		h.Write(data)
		sum := h.Sum(nil)

		key = sum[:32]
		chainCode = sum[32:]
	}
	return key, nil
}
