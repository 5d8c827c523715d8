package common

// Keys of the two entries the store keeps in the key/value surface.
const (
	AccountsKey = "moviekeeper.accounts"
	SessionKey  = "moviekeeper.session"
)

// MinSecretLength is the shortest secret accepted at registration.
const MinSecretLength = 6
