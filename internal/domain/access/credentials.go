package access

import (
	"encoding/base64"
	"strings"
)

// BasicPair is a decoded HTTP Basic username/password.
type BasicPair struct {
	Username string
	Password string
}

// Credentials is whatever the caller presented. Either field may be empty.
type Credentials struct {
	Basic  *BasicPair
	Bearer string
}

func (c Credentials) Empty() bool {
	return c.Basic == nil && c.Bearer == ""
}

// ParseAuthorization decodes an Authorization header value. Unknown schemes
// and undecodable Basic payloads yield empty credentials.
func ParseAuthorization(header string) Credentials {
	header = strings.TrimSpace(header)
	scheme, value, ok := strings.Cut(header, " ")
	if !ok {
		return Credentials{}
	}
	value = strings.TrimSpace(value)

	switch {
	case strings.EqualFold(scheme, "Bearer"):
		return Credentials{Bearer: value}
	case strings.EqualFold(scheme, "Basic"):
		decoded, err := base64.StdEncoding.DecodeString(value)
		if err != nil {
			return Credentials{}
		}
		username, password, ok := strings.Cut(string(decoded), ":")
		if !ok || username == "" {
			return Credentials{}
		}
		return Credentials{Basic: &BasicPair{Username: username, Password: password}}
	default:
		return Credentials{}
	}
}
