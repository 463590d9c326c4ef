package net

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/mdns"
)

// DefaultService is the mDNS service type boards advertise.
const DefaultService = "_localsketch._tcp"

// ErrNoHost is returned when discovery finds nobody.
var ErrNoHost = errors.New("no SketchBoard host found")

// Advertise announces a host on the LAN. Shut the server down to stop.
func Advertise(service string, port int) (*mdns.Server, error) {
	host, err := os.Hostname()
	if err != nil {
		return nil, fmt.Errorf("could not get hostname: %w", err)
	}

	info := []string{"SketchBoard"}

	zone, err := mdns.NewMDNSService(host, service, "", "", port, nil, info)
	if err != nil {
		return nil, fmt.Errorf("failed to create mDNS service: %w", err)
	}

	server, err := mdns.NewServer(&mdns.Config{Zone: zone})
	if err != nil {
		return nil, fmt.Errorf("failed to start mDNS server: %w", err)
	}
	return server, nil
}

// Browse queries for hosts and calls found with each "ip:port" seen.
func Browse(service string, timeout time.Duration, found func(addr string)) error {
	entries := make(chan *mdns.ServiceEntry, 8)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for e := range entries {
			if addr, ok := entryAddr(service, e); ok {
				found(addr)
			}
		}
	}()

	params := mdns.DefaultParams(service)
	params.Entries = entries
	params.Timeout = timeout
	params.DisableIPv6 = true
	err := mdns.Query(params)
	close(entries)
	<-done
	if err != nil {
		return fmt.Errorf("mDNS query for %s: %w", service, err)
	}
	return nil
}

// DiscoverHost returns the first host that answers within timeout.
func DiscoverHost(service string, timeout time.Duration) (string, error) {
	var first string
	err := Browse(service, timeout, func(addr string) {
		if first == "" {
			first = addr
		}
	})
	if err != nil {
		return "", err
	}
	if first == "" {
		return "", ErrNoHost
	}
	return first, nil
}

// entryAddr skips answers for other services and entries without an
// IPv4 address or port.
func entryAddr(service string, e *mdns.ServiceEntry) (string, bool) {
	if e == nil || e.AddrV4 == nil || e.Port == 0 {
		return "", false
	}
	if !strings.Contains(e.Name, service) {
		return "", false
	}
	return fmt.Sprintf("%s:%d", e.AddrV4.String(), e.Port), true
}
