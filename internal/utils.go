package internal

import (
	"net"

	"github.com/sqlc-dev/pqtype"
)

var loopbackIpNet = net.IPNet{
	IP:   net.IPv4(127, 0, 0, 1),
	Mask: net.CIDRMask(32, 32),
}

// HostIpNet returns the first IPv4 address of an up, non-loopback
// interface. Machines without one fall back to 127.0.0.1/32.
func HostIpNet() (net.IPNet, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return net.IPNet{}, err
	}

	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}

		addrs, err := iface.Addrs()
		if err != nil {
			return net.IPNet{}, err
		}

		for _, addr := range addrs {
			if ipnet, ok := addr.(*net.IPNet); ok {
				if ip := ipnet.IP.To4(); ip != nil && !ip.IsLoopback() {
					return net.IPNet{IP: ip, Mask: net.CIDRMask(32, 32)}, nil
				}
			}
		}
	}
	return loopbackIpNet, nil
}

func HostInet() (pqtype.Inet, error) {
	ipNet, err := HostIpNet()
	if err != nil {
		return pqtype.Inet{}, err
	}
	return pqtype.Inet{IPNet: ipNet, Valid: true}, nil
}
