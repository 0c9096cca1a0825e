/*
Package endpoint turns positional command-line tokens into validated remote
endpoints.

The accepted form is `address:port`, where address is an IPv4 or IPv6 literal
and port is a decimal number in 0-65535. The first colon separates the address
from the port and anything after a second colon is ignored, so `10.0.0.1:80`
and `10.0.0.1:80:x` name the same endpoint. Because an unbracketed IPv6
literal always contains a colon, IPv6 endpoints are written in brackets:
`[::1]:80`.

Host names are not resolved; the package never touches the network.
*/
package endpoint
