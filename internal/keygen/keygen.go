package keygen

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"

	"github.com/mr-tron/base58"
	bip39 "github.com/tyler-smith/go-bip39"
)

// Keypair is one generated identity: the base58 public address and the
// base58 32-byte seed it was built from. Both render in the base58
// alphabet, which contains no comma, so CSV records round-trip.
type Keypair struct {
	Address string
	Secret  string

	// Mnemonic is set only by MnemonicSource.
	Mnemonic string
}

// Source produces one fresh keypair per call. Implementations must be
// safe for concurrent use; an error means the entropy source is broken
// and the whole search must stop.
type Source interface {
	Generate() (Keypair, error)
}

// RandomSource draws ed25519 keypairs straight from crypto/rand.
type RandomSource struct{}

func (RandomSource) Generate() (Keypair, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return Keypair{}, fmt.Errorf("generate ed25519 key: %w", err)
	}
	return Keypair{
		Address: base58.Encode(pub),
		Secret:  base58.Encode(priv.Seed()),
	}, nil
}

// MnemonicSource derives each keypair from a fresh BIP-39 mnemonic via
// SLIP-10 at m/44'/501'/0'/0', so every emitted address is recoverable
// from its phrase in any standard wallet.
type MnemonicSource struct {
	Strength   int    // entropy bits, 128 = 12 words; 0 defaults to 128
	Passphrase string // optional BIP-39 passphrase
}

func (s MnemonicSource) Generate() (Keypair, error) {
	strength := s.Strength
	if strength == 0 {
		strength = 128
	}
	entropy, err := bip39.NewEntropy(strength)
	if err != nil {
		return Keypair{}, fmt.Errorf("generate entropy: %w", err)
	}
	mn, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return Keypair{}, fmt.Errorf("build mnemonic: %w", err)
	}
	kp, err := FromMnemonic(mn, s.Passphrase)
	if err != nil {
		return Keypair{}, err
	}
	return kp, nil
}

// FromMnemonic deterministically derives the account keypair for a
// known phrase. Used by MnemonicSource and exposed for recovery checks.
func FromMnemonic(mnemonic, passphrase string) (Keypair, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return Keypair{}, fmt.Errorf("invalid mnemonic phrase")
	}
	seed := bip39.NewSeed(mnemonic, passphrase)
	key, err := deriveAccountSeed(seed)
	if err != nil {
		return Keypair{}, fmt.Errorf("derive account seed: %w", err)
	}
	priv := ed25519.NewKeyFromSeed(key)
	pub := priv.Public().(ed25519.PublicKey)
	return Keypair{
		Address:  base58.Encode(pub),
		Secret:   base58.Encode(key),
		Mnemonic: mnemonic,
	}, nil
}
