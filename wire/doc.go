// Package wire defines the exchange format of planning requests and results.
//
// Messages are msgpack encoded. An Archive bundles a request with its result
// and is stored msgpack encoded and zstd compressed, the usual layout of
// "*.msgpack.zst" files.
package wire
