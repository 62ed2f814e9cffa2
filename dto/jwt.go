package dto

// RequestMeta is the metadata attached to every simulated service call once
// the bearer gate has passed: the authorization header plus a fresh request id.
type RequestMeta struct {
	Authorization string `json:"authorization"`
	RequestID     string `json:"x-request-id"`
}

type TokenPair struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}
