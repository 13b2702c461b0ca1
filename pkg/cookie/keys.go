package cookie

import (
	"crypto/sha256"
	"errors"
	"io"

	"golang.org/x/crypto/hkdf"
)

const (
	keySize     = 32
	signInfo    = "cookiewire-cookie-sign-v1"
	encryptInfo = "cookiewire-cookie-encrypt-v1"
)

// keyPair holds the keys derived from one configured secret. Signing and
// encryption never share key material.
type keyPair struct {
	sign    []byte
	encrypt []byte
}

func deriveKeys(secret string) (keyPair, error) {
	sign, err := deriveKey(secret, signInfo)
	if err != nil {
		return keyPair{}, err
	}
	encrypt, err := deriveKey(secret, encryptInfo)
	if err != nil {
		return keyPair{}, err
	}
	return keyPair{sign: sign, encrypt: encrypt}, nil
}

func deriveKey(secret, info string) ([]byte, error) {
	r := hkdf.New(sha256.New, []byte(secret), nil, []byte(info))
	key := make([]byte, keySize)
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, errors.Join(ErrKeyDerivation, err)
	}
	return key, nil
}
