package vanilla

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	helperPolicyOnce sync.Once
	helperPolicy     *bluemonday.Policy
)

// sanitizeHelper cleans caller-supplied helper markup. Links, emphasis and
// lists survive; scripts, styles and event handlers do not.
func sanitizeHelper(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(helperSanitizer().Sanitize(trimmed))
}

func helperSanitizer() *bluemonday.Policy {
	helperPolicyOnce.Do(func() {
		policy := bluemonday.UGCPolicy()
		policy.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).Globally()
		policy.RequireNoFollowOnLinks(true)
		helperPolicy = policy
	})
	return helperPolicy
}
