package layouts

import "strings"

// CalculateTitle joins the page title and the site name for <title>.
func CalculateTitle(title, siteName string) string {
	switch {
	case title != "" && siteName != "" && title != siteName:
		return title + " - " + siteName
	case title != "":
		return title
	default:
		return siteName
	}
}

// fontToken keeps only characters that are safe inside a quoted CSS font
// family name.
func fontToken(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == ' ' || r == '-' || r == '_':
			return r
		default:
			return -1
		}
	}, name)
}
