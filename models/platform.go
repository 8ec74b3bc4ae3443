package models

// Platform is the social platform a posting was collected from.
// It is declared by the user at submission time, never inferred.
type Platform string

const (
	PlatformYouTube   Platform = "YouTube"
	PlatformLinkedIn  Platform = "LinkedIn"
	PlatformTelegram  Platform = "Telegram"
	PlatformInstagram Platform = "Instagram"
)

// Platforms lists every supported platform.
var Platforms = []Platform{
	PlatformYouTube,
	PlatformLinkedIn,
	PlatformTelegram,
	PlatformInstagram,
}

// ParsePlatform returns the matching platform, or false when the value is
// not one of the supported platforms.
func ParsePlatform(s string) (Platform, bool) {
	for _, p := range Platforms {
		if string(p) == s {
			return p, true
		}
	}
	return "", false
}
