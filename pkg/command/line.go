package command

import "github.com/askiada/go-lineedit/pkg/address"

// Line is a line of the stream and its position.
type Line struct {
	Addr     address.Address
	Contents string
}
