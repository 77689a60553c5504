package coderland

import (
	"fmt"
	"log/slog"
	"net"
)

const (
	// Greeting is the body of every response.
	Greeting = "Hello from Coderland!"

	startRule = "----------------------------------------------"
	stopRule  = "---------------------------------------------"
	stopLine  = "---> Coderland signing off! Have a great day."
)

// startBanner returns the three startup lines for the bound address.
func startBanner(addr net.Addr) []string {
	where := "localhost:8080"
	if tcp, ok := addr.(*net.TCPAddr); ok {
		where = fmt.Sprintf("localhost:%d", tcp.Port)
	} else if addr != nil {
		where = addr.String()
	}
	return []string{
		startRule,
		"---> Coderland now listening on " + where,
		startRule,
	}
}

func stopBanner() []string {
	return []string{stopLine, stopRule}
}

func logLines(log *slog.Logger, lines []string) {
	for _, line := range lines {
		log.Info(line)
	}
}
