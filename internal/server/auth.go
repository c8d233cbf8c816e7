package server

import (
	"bufio"
	"bytes"
	"os"
	"strings"

	"github.com/charmbracelet/ssh"
	gossh "golang.org/x/crypto/ssh"

	"github.com/renato0307/convobar/internal/logging"
)

// keyAuthorizer decides whether a client key may open a conversation
type keyAuthorizer struct {
	authorizedKeysPath string
	trustedKeys        []string
}

// authorize checks key against the authorized_keys file and the keys trusted in settings
func (a keyAuthorizer) authorize(ctx ssh.Context, key ssh.PublicKey) bool {
	fingerprint := gossh.FingerprintSHA256(key)

	authorized := matchesAny(key, a.trustedKeys) || isKeyAuthorized(key, a.authorizedKeysPath)
	if authorized {
		logging.Logger.Info("SSH key authenticated",
			"user", ctx.User(),
			"fingerprint", fingerprint,
			"key_type", key.Type())
	} else {
		logging.Logger.Warn("Unauthorized SSH key",
			"user", ctx.User(),
			"fingerprint", fingerprint,
			"key_type", key.Type())
	}
	return authorized
}

// isKeyAuthorized checks if the client's public key is in an authorized_keys file
func isKeyAuthorized(clientKey ssh.PublicKey, authorizedKeysPath string) bool {
	if authorizedKeysPath == "" {
		return false
	}

	file, err := os.Open(authorizedKeysPath)
	if err != nil {
		logging.Logger.Warn("Failed to open authorized_keys", "error", err, "path", authorizedKeysPath)
		return false
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		logging.Logger.Error("Error reading authorized_keys", "error", err)
		return false
	}

	return matchesAny(clientKey, lines)
}

// matchesAny reports whether clientKey equals any key in authorized_keys formatted lines.
// Blank lines, comments and unparsable lines are skipped.
func matchesAny(clientKey ssh.PublicKey, lines []string) bool {
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		authorizedKey, _, _, _, err := gossh.ParseAuthorizedKey([]byte(line))
		if err != nil {
			logging.Logger.Debug("Failed to parse authorized key line", "error", err)
			continue
		}

		if bytes.Equal(clientKey.Marshal(), authorizedKey.Marshal()) {
			return true
		}
	}
	return false
}
