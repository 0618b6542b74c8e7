package test

import (
	"io"
	"strings"
)

func csvFixture() io.Reader {
	return strings.NewReader("name,email\nalice,alice@example.com\nbob,bob@example.com\ncarol,carol@example.com\n")
}
