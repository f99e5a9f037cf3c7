package backup

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

const (
	kdfIterations = 120_000
	saltSize      = 16
	keySize       = 32 // AES-256
)

var ErrWrongPassphrase = errors.New("incorrect passphrase")

type encryptedEnvelope struct {
	Encrypted bool   `json:"encrypted"`
	Salt      string `json:"salt"`
	Nonce     string `json:"nonce"`
	Data      string `json:"data"`
}

// Encrypt seals a backup payload with AES-256-GCM under a key derived from
// the passphrase via PBKDF2, wrapped in a JSON envelope so import can detect
// encrypted files.
func Encrypt(payload []byte, passphrase string) ([]byte, error) {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	gcm, err := newGCM(passphrase, salt)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}
	ciphertext := gcm.Seal(nil, nonce, payload, nil)
	return json.Marshal(encryptedEnvelope{
		Encrypted: true,
		Salt:      base64.StdEncoding.EncodeToString(salt),
		Nonce:     base64.StdEncoding.EncodeToString(nonce),
		Data:      base64.StdEncoding.EncodeToString(ciphertext),
	})
}

// Decrypt opens an encrypted backup envelope.
func Decrypt(payload []byte, passphrase string) ([]byte, error) {
	var env encryptedEnvelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return nil, err
	}
	if !env.Encrypted {
		return nil, errors.New("payload is not an encrypted backup")
	}
	salt, err := base64.StdEncoding.DecodeString(env.Salt)
	if err != nil {
		return nil, err
	}
	nonce, err := base64.StdEncoding.DecodeString(env.Nonce)
	if err != nil {
		return nil, err
	}
	data, err := base64.StdEncoding.DecodeString(env.Data)
	if err != nil {
		return nil, err
	}
	gcm, err := newGCM(passphrase, salt)
	if err != nil {
		return nil, err
	}
	plain, err := gcm.Open(nil, nonce, data, nil)
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	return plain, nil
}

// IsEncrypted detects the encrypted envelope without attempting decryption.
func IsEncrypted(payload []byte) bool {
	var env struct {
		Encrypted bool `json:"encrypted"`
	}
	if err := json.Unmarshal(payload, &env); err != nil {
		return false
	}
	return env.Encrypted
}

func newGCM(passphrase string, salt []byte) (cipher.AEAD, error) {
	key := pbkdf2.Key([]byte(passphrase), salt, kdfIterations, keySize, sha256.New)
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
