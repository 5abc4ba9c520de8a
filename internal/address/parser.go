package address

import (
	"regexp"
	"strings"

	"github.com/rh4001/ChurchToolsAPI/internal/core/domain"
)

// postalCode matches a German postal code token.
var postalCode = regexp.MustCompile(`^[0-9]{5}$`)

// Parse splits a free-text address into name, street, postal code and city.
// It never fails: unknown shapes and empty input yield an empty result.
func Parse(address string) domain.ParsedAddress {
	var parsed domain.ParsedAddress

	if strings.TrimSpace(address) == "" {
		return parsed
	}
	segments := splitSegments(address)

	switch len(segments) {
	case 3:
		parsed.Name = segments[0]
		parsed.Street = segments[1]
		parsed.PostalCode, parsed.City = splitLocality(segments[2])
	case 2:
		switch {
		case postalCode.MatchString(firstToken(segments[1])):
			parsed.Street = segments[0]
			parsed.PostalCode, parsed.City = splitLocality(segments[1])
		case containsDigit(segments[0]):
			parsed.Street = segments[0]
			parsed.City = segments[1]
		default:
			parsed.Name = segments[0]
			parsed.City = segments[1]
		}
	case 1:
		if containsDigit(segments[0]) {
			parsed.Street = segments[0]
		} else {
			parsed.Name = segments[0]
		}
	}

	return parsed
}

func splitSegments(address string) []string {
	parts := strings.Split(address, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// splitLocality reads "12345 City". Anything but exactly two tokens
// leaves both values empty.
func splitLocality(segment string) (postal, city string) {
	tokens := strings.Fields(segment)
	if len(tokens) != 2 {
		return "", ""
	}
	return tokens[0], tokens[1]
}

func firstToken(segment string) string {
	tokens := strings.Fields(segment)
	if len(tokens) == 0 {
		return ""
	}
	return tokens[0]
}

func containsDigit(s string) bool {
	return strings.ContainsAny(s, "0123456789")
}
