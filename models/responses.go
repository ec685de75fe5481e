package models

// KeysResponse lists every key known to the store, optionally narrowed
// by a prefix filter supplied by the client.
type KeysResponse struct {
	// Keys is the list of keys in lexicographic order.
	Keys []string `json:"keys"`

	// Length is the total number of entries in Keys.
	// Provided for convenience so the client can pre-allocate
	// or validate the response without iterating the slice.
	Length int `json:"length"`
}
