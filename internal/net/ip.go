package net

import (
	"fmt"
	"log"
	"net"
	"strings"
)

// Scheme prefixes share links, e.g. localsketch://192.168.1.20:8888
const Scheme = "localsketch://"

// OutgoingIP finds the preferred local IP address for the host to share.
func OutgoingIP() string {
	conn, err := net.Dial("udp", "8.8.8.8:80")
	if err != nil {
		// If we can't reach the internet, fall back to checking local interfaces.
		return firstIPv4().String()
	}
	defer conn.Close()

	localAddr := conn.LocalAddr().(*net.UDPAddr)
	return localAddr.IP.String()
}

// firstIPv4 is used on networks without internet access.
func firstIPv4() net.IP {
	ifaces, _ := net.Interfaces()
	for _, iface := range ifaces {
		// Ignore loopback and down interfaces
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		addrs, _ := iface.Addrs()
		for _, a := range addrs {
			if ipnet, ok := a.(*net.IPNet); ok && ipnet.IP.To4() != nil {
				return ipnet.IP.To4()
			}
		}
	}
	log.Println("No suitable local IP found, link generation may fail.")
	return net.IPv4(127, 0, 0, 1)
}

// ShareLink builds the link a client passes on its command line.
func ShareLink(ip string, port int) string {
	return fmt.Sprintf("%s%s:%d", Scheme, ip, port)
}

// ParseLink extracts "host:port" from a share link.
func ParseLink(link string) (string, bool) {
	if !strings.HasPrefix(link, Scheme) {
		return "", false
	}
	addr := strings.TrimSuffix(strings.TrimPrefix(link, Scheme), "/")
	if _, _, err := net.SplitHostPort(addr); err != nil {
		return "", false
	}
	return addr, true
}
