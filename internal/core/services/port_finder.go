package services

import (
	"fmt"
	"net"

	"github.com/custodia-labs/unitbot/internal/core/domain"
)

// MCPPortRange is the range probed when the MCP server is asked to pick
// its own HTTP port.
var MCPPortRange = [2]int{8765, 8799}

// FindAvailablePort returns the first port in [startPort, endPort] that can
// be bound on the loopback interface.
func FindAvailablePort(startPort, endPort int) (int, error) {
	if startPort <= 0 || endPort < startPort {
		return 0, fmt.Errorf("port range %d-%d: %w", startPort, endPort, domain.ErrInvalidInput)
	}
	for port := startPort; port <= endPort; port++ {
		listener, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", port))
		if err == nil {
			_ = listener.Close()
			return port, nil
		}
	}
	return 0, fmt.Errorf("no available port in range %d-%d", startPort, endPort)
}
