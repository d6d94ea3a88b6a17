package domain

import "strings"

// NormalizeEmail lowercases an email address and strips surrounding
// whitespace. Emails are stored and looked up in this canonical form, so
// differently-cased input always resolves to the same account.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
