package test

import (
	"github.com/stretchr/testify/assert"
	"social_pilot/texts"
	"strings"
	"testing"
)

func Test_Texts_Snippets_Resolve(t *testing.T) {

	txt := texts.NewTexts()

	res := txt.WithVals("log_no_account.txt", map[string]string{"platform": "instagram"})
	assert.True(t, strings.Contains(res, "instagram"))
	assert.False(t, strings.Contains(res, "{{"))

	res = txt.WithVals("log_action_done.txt", map[string]string{"action": "LIKE", "handle": "alice"})
	assert.True(t, strings.Contains(res, "LIKE"))
	assert.True(t, strings.Contains(res, "@alice"))

	assert.NotEqual(t, "", txt.Get("log_cycle_done.txt"))
	assert.Equal(t, "", txt.Get("no_such_snippet.txt"))
}
