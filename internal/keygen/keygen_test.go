package keygen

import (
	"crypto/ed25519"
	"testing"

	"github.com/mr-tron/base58"
)

func TestRandomSource_ProducesValidKeypair(t *testing.T) {
	kp, err := RandomSource{}.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	pub, err := base58.Decode(kp.Address)
	if err != nil {
		t.Fatalf("address is not valid base58: %v", err)
	}
	if len(pub) != ed25519.PublicKeySize {
		t.Fatalf("address decodes to %d bytes, want %d", len(pub), ed25519.PublicKeySize)
	}

	seed, err := base58.Decode(kp.Secret)
	if err != nil {
		t.Fatalf("secret is not valid base58: %v", err)
	}
	if len(seed) != ed25519.SeedSize {
		t.Fatalf("secret decodes to %d bytes, want %d", len(seed), ed25519.SeedSize)
	}

	// the secret must actually control the address
	priv := ed25519.NewKeyFromSeed(seed)
	if got := base58.Encode(priv.Public().(ed25519.PublicKey)); got != kp.Address {
		t.Fatalf("secret derives address %s, want %s", got, kp.Address)
	}

	if kp.Mnemonic != "" {
		t.Fatalf("random source must not carry a mnemonic")
	}
}

func TestRandomSource_FreshKeyPerCall(t *testing.T) {
	src := RandomSource{}
	a, err := src.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, err := src.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if a.Address == b.Address || a.Secret == b.Secret {
		t.Fatalf("consecutive keypairs must differ")
	}
}

func TestMnemonicSource_RoundTripsThroughPhrase(t *testing.T) {
	kp, err := MnemonicSource{}.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if kp.Mnemonic == "" {
		t.Fatalf("mnemonic source must carry the phrase")
	}

	again, err := FromMnemonic(kp.Mnemonic, "")
	if err != nil {
		t.Fatalf("FromMnemonic: %v", err)
	}
	if again.Address != kp.Address || again.Secret != kp.Secret {
		t.Fatalf("re-derivation mismatch: %s vs %s", again.Address, kp.Address)
	}
}

func TestFromMnemonic_Deterministic(t *testing.T) {
	const phrase = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

	a, err := FromMnemonic(phrase, "")
	if err != nil {
		t.Fatalf("FromMnemonic: %v", err)
	}
	b, err := FromMnemonic(phrase, "")
	if err != nil {
		t.Fatalf("FromMnemonic: %v", err)
	}
	if a.Address != b.Address || a.Secret != b.Secret {
		t.Fatalf("same phrase must derive the same keypair")
	}

	withPass, err := FromMnemonic(phrase, "hunter2")
	if err != nil {
		t.Fatalf("FromMnemonic with passphrase: %v", err)
	}
	if withPass.Address == a.Address {
		t.Fatalf("passphrase must change the derived account")
	}
}

func TestFromMnemonic_RejectsInvalidPhrase(t *testing.T) {
	if _, err := FromMnemonic("definitely not a bip39 phrase", ""); err == nil {
		t.Fatalf("expected error for invalid mnemonic")
	}
}
