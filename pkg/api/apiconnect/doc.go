// Package apiconnect holds the Connect handlers and clients for the Split Karo
// services. The bindings are written by hand in the shape protoc-gen-connect-go
// produces, with every handler and client speaking the JSON codec from
// package api.
package apiconnect
