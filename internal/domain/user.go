package domain

const MaxDisplayNameLen = 36

// ClampDisplayName caps a client-supplied display name at MaxDisplayNameLen.
// Empty names are rejected later, at join time.
func ClampDisplayName(name string) string {
	if len(name) > MaxDisplayNameLen {
		return name[:MaxDisplayNameLen]
	}
	return name
}
