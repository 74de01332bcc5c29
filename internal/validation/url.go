package validation

import (
	"net/url"
	"strings"
)

var blockedProtocols = map[string]bool{
	"javascript": true,
	"data":       true,
	"file":       true,
	"vbscript":   true,
	"about":      true,
	"blob":       true,
}

var allowedProtocols = map[string]bool{
	"http":  true,
	"https": true,
}

type URLValidator struct {
	maxLength       int
	allowPrivateIPs bool
	ipValidator     *IPValidator
}

func NewURLValidator(maxLength int, allowPrivateIPs bool) *URLValidator {
	return &URLValidator{
		maxLength:       maxLength,
		allowPrivateIPs: allowPrivateIPs,
		ipValidator:     NewIPValidator(),
	}
}

// Parse accepts only absolute http and https URLs with a host. Surrounding
// whitespace is ignored; nothing else about the URL is normalised.
func (v *URLValidator) Parse(rawURL string) (*url.URL, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return nil, ErrEmptyURL
	}

	if v.maxLength > 0 && len(rawURL) > v.maxLength {
		return nil, ErrURLTooLong
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, ErrInvalidURLFormat
	}

	scheme := strings.ToLower(parsed.Scheme)
	if blockedProtocols[scheme] {
		return nil, ErrUnsafeProtocol
	}
	if !allowedProtocols[scheme] || !parsed.IsAbs() {
		return nil, ErrInvalidURLFormat
	}

	if parsed.Host == "" || parsed.Opaque != "" {
		return nil, ErrInvalidURLFormat
	}

	if !v.allowPrivateIPs {
		if err := v.ipValidator.ValidateHost(parsed.Host); err != nil {
			return nil, err
		}
	}

	return parsed, nil
}
