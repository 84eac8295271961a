package masking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskSecret(t *testing.T) {
	assert.Equal(t, "", MaskSecret(""))
	assert.Equal(t, "", MaskSecret("   "))
	assert.Equal(t, "****", MaskSecret("abcd"))
	assert.Equal(t, "****6789", MaskSecret("123456789"))
	assert.Equal(t, "sk_****6789", MaskSecret("sk_123456789"))
	assert.Equal(t, "api_key_****", MaskSecret("api_key_ab"))
}

func TestMaskMetadataRedactsSensitiveKeys(t *testing.T) {
	masked := MaskMetadata(map[string]any{
		"apiToken":    "tok_abcdef123456",
		"password":    "hunter2always",
		"companyName": "Acme Corp",
		"count":       3,
	})

	assert.Equal(t, "****3456", masked["apiToken"])
	assert.Equal(t, "****ways", masked["password"])
	assert.Equal(t, "Acme Corp", masked["companyName"])
	assert.Equal(t, 3, masked["count"])
}

func TestMaskMetadataRecursesIntoNestedMaps(t *testing.T) {
	masked := MaskMetadata(map[string]any{
		"request": map[string]any{
			"clientSecret": "cs_abcdef123456",
			"companyId":    "cmp-1",
		},
	})

	nested, ok := masked["request"].(map[string]any)
	assert.True(t, ok)
	assert.Equal(t, "cs_****3456", nested["clientSecret"])
	assert.Equal(t, "cmp-1", nested["companyId"])
}

func TestMaskMetadataEmptyInput(t *testing.T) {
	assert.Nil(t, MaskMetadata(nil))
	assert.Nil(t, MaskMetadata(map[string]any{}))
	assert.Nil(t, MaskMetadata(map[string]any{"  ": "dropped"}))
}

func TestMaskMetadataNonStringSecretPassesThrough(t *testing.T) {
	masked := MaskMetadata(map[string]any{"tokenCount": 5})
	assert.Equal(t, 5, masked["tokenCount"])
}
