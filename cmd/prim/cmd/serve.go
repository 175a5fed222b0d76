/*
File    : prim/cmd/prim/cmd/serve.go
*/
package cmd

import (
	"fmt"
	"net"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/primlang/prim/repl"
)

var serveCmd = &cobra.Command{
	Use:   "serve <port>",
	Short: "Start a TCP server handing out one Prim REPL session per connection",
	Args:  cobra.ExactArgs(1),
	RunE:  serve,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve(_ *cobra.Command, args []string) error {
	port := args[0]
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		return fmt.Errorf("failed to listen on port %s: %w", port, err)
	}
	defer listener.Close()

	color.New(color.FgCyan).Fprintf(os.Stdout, "prim serve listening on :%s\n", port)

	for {
		conn, err := listener.Accept()
		if err != nil {
			color.New(color.FgRed).Fprintf(os.Stderr, "accept failed: %v\n", err)
			continue
		}
		go handleConn(conn)
	}
}

func handleConn(conn net.Conn) {
	defer conn.Close()
	repl.New().Start(conn, conn)
}
