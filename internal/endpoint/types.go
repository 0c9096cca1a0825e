package endpoint

import "net/netip"

// RemoteEndpoint is a validated target address. It is a comparable value;
// two endpoints are equal when both address and port match.
type RemoteEndpoint struct {
	Addr netip.Addr
	Port uint16
}

// New builds an endpoint from an already validated address and port.
func New(addr netip.Addr, port uint16) RemoteEndpoint {
	return RemoteEndpoint{Addr: addr, Port: port}
}

// AddrPort returns the endpoint as a netip.AddrPort, ready for dialing.
func (e RemoteEndpoint) AddrPort() netip.AddrPort {
	return netip.AddrPortFrom(e.Addr, e.Port)
}

// String renders the endpoint as `addr:port`, bracketing IPv6 addresses.
func (e RemoteEndpoint) String() string {
	return e.AddrPort().String()
}
