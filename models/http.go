package models

// ValuePayload is the JSON body accepted by the upsert and update
// endpoints. Only the value itself is carried in the body; the key
// comes from the URL path.
type ValuePayload struct {
	// Value is the payload to store under the key from the request path.
	// An empty value is rejected with 400 Bad Request.
	Value string `json:"value"`
}

// Credentials is the JSON body of the login endpoint.
type Credentials struct {
	// Login is the account name configured on the server.
	Login string `json:"login"`

	// Password is the plaintext password. It is compared against the
	// configured bcrypt hash and never stored.
	Password string `json:"password"`
}
