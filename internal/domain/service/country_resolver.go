package service

import "net"

// CountryResolver maps a client IP to an ISO 3166-1 alpha-2 country code.
// An empty code with a nil error means the address is unknown to the database.
type CountryResolver interface {
	CountryCode(ip net.IP) (string, error)
	Close() error
}
