package masking

import "strings"

const maskToken = "****"

var sensitiveKeys = []string{"secret", "token", "password", "key"}

// MaskSecret redacts a secret while keeping a minimal suffix for auditing.
func MaskSecret(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ""
	}

	prefix, remainder := splitPrefix(trimmed)
	if len(remainder) <= 4 {
		return prefix + maskToken
	}

	return prefix + maskToken + remainder[len(remainder)-4:]
}

// MaskMetadata returns a copy of the payload with values under
// sensitive-looking keys redacted. Other values pass through untouched.
func MaskMetadata(input map[string]any) map[string]any {
	if len(input) == 0 {
		return nil
	}

	masked := make(map[string]any, len(input))
	for key, value := range input {
		trimmedKey := strings.TrimSpace(key)
		if trimmedKey == "" {
			continue
		}
		if isSensitiveKey(trimmedKey) {
			if s, ok := value.(string); ok {
				masked[trimmedKey] = MaskSecret(s)
				continue
			}
		}
		if nested, ok := value.(map[string]any); ok {
			masked[trimmedKey] = MaskMetadata(nested)
			continue
		}
		masked[trimmedKey] = value
	}

	if len(masked) == 0 {
		return nil
	}
	return masked
}

func isSensitiveKey(key string) bool {
	lower := strings.ToLower(key)
	for _, marker := range sensitiveKeys {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

func splitPrefix(value string) (string, string) {
	lastUnderscore := strings.LastIndex(value, "_")
	if lastUnderscore == -1 || lastUnderscore == len(value)-1 {
		return "", value
	}
	return value[:lastUnderscore+1], value[lastUnderscore+1:]
}
