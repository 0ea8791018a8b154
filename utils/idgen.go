package utils

import (
	"fmt"

	"github.com/jaevor/go-nanoid"
)

// Entity identifiers look like "order_h1XkPz9qLmA2bRd7" - a prefix, an
// underscore and 16 characters drawn from [A-Za-z0-9].
const (
	idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 16

	OrderIDPrefix   = "order"
	PaymentIDPrefix = "pay"
)

var newIDSuffix func() string

func init() {
	gen, err := nanoid.CustomASCII(idAlphabet, idLength)
	if err != nil {
		panic(fmt.Sprintf("failed to build id generator: %v", err))
	}
	newIDSuffix = gen
}

// GenerateID produces a fresh prefixed identifier, regenerating until the
// exists check reports the id as unused. Collisions are astronomically rare
// in a 62^16 space, but the store is always consulted before an id is
// accepted.
func GenerateID(prefix string, exists func(id string) (bool, error)) (string, error) {
	for {
		id := prefix + "_" + newIDSuffix()
		taken, err := exists(id)
		if err != nil {
			return "", err
		}
		if !taken {
			return id, nil
		}
	}
}
