package endpoint

import (
	"errors"
	"fmt"
	"net/netip"
	"strconv"
	"strings"
)

// ErrInvalidEndpoint matches every error returned from Parse via errors.Is.
var ErrInvalidEndpoint = errors.New("invalid endpoint")

// ParseError reports a token that could not be turned into an endpoint.
type ParseError struct {
	Token  string
	Reason string
}

// Error implements the error interface for ParseError.
func (e *ParseError) Error() string {
	return e.Reason
}

// Is lets callers test for ErrInvalidEndpoint.
func (e *ParseError) Is(target error) bool {
	return target == ErrInvalidEndpoint
}

func newParseError(token, format string, args ...any) *ParseError {
	return &ParseError{Token: token, Reason: fmt.Sprintf(format, args...)}
}

// Parse converts a single `address:port` token into a RemoteEndpoint.
func Parse(token string) (RemoteEndpoint, error) {
	host, port, ok := split(token)
	if !ok {
		return RemoteEndpoint{}, newParseError(token, "%s is not well formatted as <host:port>.", token)
	}

	addr, err := netip.ParseAddr(host)
	if err != nil {
		return RemoteEndpoint{}, newParseError(token, "'%s' is not a valid IP address in %s.", host, token)
	}

	p, err := strconv.ParseUint(port, 10, 16)
	if err != nil {
		return RemoteEndpoint{}, newParseError(token, "'%s' is not a valid port number in %s.", port, token)
	}

	return New(addr, uint16(p)), nil
}

// ParseAll parses tokens in order and stops at the first failure.
func ParseAll(tokens []string) ([]RemoteEndpoint, error) {
	endpoints := make([]RemoteEndpoint, 0, len(tokens))
	for _, token := range tokens {
		ep, err := Parse(token)
		if err != nil {
			return nil, err
		}
		endpoints = append(endpoints, ep)
	}
	return endpoints, nil
}

// split separates the address part from the port part. A leading bracket
// selects the `[v6]:port` form; otherwise the first colon splits the token
// and a second colon ends the port.
func split(token string) (host, port string, ok bool) {
	if strings.HasPrefix(token, "[") {
		if end := strings.Index(token, "]:"); end > 0 {
			host = token[1:end]
			port, _, _ = strings.Cut(token[end+2:], ":")
			return host, port, true
		}
	}

	parts := strings.Split(token, ":")
	if len(parts) < 2 {
		return "", "", false
	}
	return parts[0], parts[1], true
}
