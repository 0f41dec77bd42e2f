package network

import (
	"net"
	"strconv"
)

var localIP string

/*
 * Local IP address of the machine, cached after the first lookup.
 * Dialing UDP sends nothing, it only selects the outgoing interface.
 * Adapted from: https://github.com/TTK4145/Network-go/blob/master/network/localip/localip.go
 */
func LocalIP() (string, error) {
	if localIP == "" {
		conn, err := net.Dial("udp4", "8.8.8.8:53")
		if err != nil {
			return "", err
		}
		defer conn.Close()
		localIP = conn.LocalAddr().(*net.UDPAddr).IP.String()
	}
	return localIP, nil
}

/*
 * The address clients should use to reach a service bound to boundAddr.
 * A wildcard host is replaced with the local IP when it can be found.
 */
func ServiceAddr(boundAddr net.Addr) string {
	udpAddr, ok := boundAddr.(*net.UDPAddr)

	if !ok || !udpAddr.IP.IsUnspecified() {
		return boundAddr.String()
	}

	ip, err := LocalIP()

	if err != nil {
		return boundAddr.String()
	}

	return net.JoinHostPort(ip, strconv.Itoa(udpAddr.Port))
}
