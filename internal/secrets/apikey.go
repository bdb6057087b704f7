package secrets

import (
	"errors"
	"os"
	"strings"

	"github.com/zalando/go-keyring"
)

const (
	// “Service” groups the app's secrets in the OS keychain.
	KeyringService = "econgrads"

	// geminiAccount is the keychain account for the enrichment API key.
	geminiAccount = "econgrads:gemini"

	// EnvGeminiKey overrides the keychain, for CI and headless boxes.
	EnvGeminiKey = "GEMINI_API_KEY"
)

// GetGeminiKey resolves the enrichment API key: keyring first, then the
// environment.
func GetGeminiKey() (string, error) {
	if pw, err := keyring.Get(KeyringService, geminiAccount); err == nil && strings.TrimSpace(pw) != "" {
		return pw, nil
	}
	if v := strings.TrimSpace(os.Getenv(EnvGeminiKey)); v != "" {
		return v, nil
	}
	return "", errors.New("gemini API key not found (set it in keychain or via " + EnvGeminiKey + ")")
}

func SetGeminiKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return errors.New("api key is empty")
	}
	return keyring.Set(KeyringService, geminiAccount, key)
}

func DeleteGeminiKey() error {
	return keyring.Delete(KeyringService, geminiAccount)
}
