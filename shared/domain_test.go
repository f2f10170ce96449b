package shared

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestNormalizeHandle(t *testing.T) {
	assert.Equal(t, "some.user", NormalizeHandle("@Some.User/"))
	assert.Equal(t, "plain_handle", NormalizeHandle("plain_handle"))
	assert.Equal(t, "spacedout", NormalizeHandle("spaced out"))
	assert.Equal(t, "emoji-less", NormalizeHandle("emoji💪-less"))
	assert.Equal(t, "", NormalizeHandle("@/"))
}

func TestValidateHandle(t *testing.T) {
	assert.Nil(t, ValidateHandle("some.user"))
	assert.NotNil(t, ValidateHandle(""))
	assert.NotNil(t, ValidateHandle("has space"))
}

func TestValidatePlatform(t *testing.T) {
	assert.Nil(t, ValidatePlatform(PlatformInstagram))
	assert.Nil(t, ValidatePlatform(PlatformYoutube))
	assert.NotNil(t, ValidatePlatform("myspace"))
}

func TestEllipticalTruncate(t *testing.T) {
	assert.Equal(t, "…", TruncateWithEllipsis("1 2 3", 0))
	assert.Equal(t, "1…", TruncateWithEllipsis("1 2 3", 1))
	assert.Equal(t, "1…", TruncateWithEllipsis("1 2 3", 2))
	assert.Equal(t, "1 2…", TruncateWithEllipsis("1 2 3", 3))
	assert.Equal(t, "1 2 3", TruncateWithEllipsis("1 2 3", 5))
}
