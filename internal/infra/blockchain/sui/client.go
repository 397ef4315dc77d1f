// Package sui implements the explain.TransactionFetcher interface for Sui
// fullnodes using a JSON-RPC client.
package sui

import (
	"github.com/otterhq/suilens/internal/explain"
	"github.com/otterhq/suilens/internal/pkg/transport/jsonrpc"
)

// Well-known public fullnode endpoints.
const (
	MainnetEndpoint = "https://fullnode.mainnet.sui.io:443"
	TestnetEndpoint = "https://fullnode.testnet.sui.io:443"
	DevnetEndpoint  = "https://fullnode.devnet.sui.io:443"
)

// client implements the explain.TransactionFetcher interface for Sui
// fullnodes. It communicates with the node via a JSON-RPC client.
type client struct {
	conn jsonrpc.Client
}

// Ensure client implements the explain.TransactionFetcher interface at compile time.
var _ explain.TransactionFetcher = (*client)(nil)

// NewClient creates a new Sui fullnode client using the provided JSON-RPC
// connection.
func NewClient(conn jsonrpc.Client) *client {
	return &client{
		conn: conn,
	}
}
