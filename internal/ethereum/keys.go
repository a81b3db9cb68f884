package ethereum

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/keystore"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
)

var ErrMalformedKey = errors.New("malformed ethereum key")

// LoadPrivateKey resolves the --ethereum-key reference. The reference is either a hex encoded
// secp256k1 private key or the name of an encrypted JSON key stored in keystoreDir
// (<name>.json or <name>); a path to such a file is accepted as well.
func LoadPrivateKey(ref, keystoreDir, passphrase string) (*ecdsa.PrivateKey, error) {
	if ref == "" {
		return nil, fmt.Errorf("%w: empty key reference", ErrMalformedKey)
	}

	if raw, ok := hexKey(ref); ok {
		key, err := ethcrypto.HexToECDSA(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to hex-decode Ethereum ECDSA private key: %w", ErrMalformedKey, err)
		}
		return key, nil
	}

	path, err := findKeyFile(ref, keystoreDir)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read the keyfile at '%s': %w", path, err)
	}

	key, err := keystore.DecryptKey(data, passphrase)
	if err != nil {
		return nil, fmt.Errorf("%w: error decrypting key %s: %w", ErrMalformedKey, path, err)
	}

	return key.PrivateKey, nil
}

func hexKey(ref string) (string, bool) {
	raw := strings.TrimPrefix(strings.TrimPrefix(ref, "0x"), "0X")
	if len(raw) != 64 {
		return "", false
	}
	for _, c := range raw {
		if !strings.ContainsRune("0123456789abcdefABCDEF", c) {
			return "", false
		}
	}
	return raw, true
}

func findKeyFile(ref, keystoreDir string) (string, error) {
	candidates := []string{
		filepath.Join(keystoreDir, ref+".json"),
		filepath.Join(keystoreDir, ref),
		ref,
	}
	for _, candidate := range candidates {
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: key %q is neither a hex private key nor found in keystore %s", ErrMalformedKey, ref, keystoreDir)
}
