package proto

import "strings"

// Product is one "protocol[/version]" token from an Upgrade field value, per
// RFC 7230 §6.7. Unlike the teacher's ChooseUpgrade (which only ever needed
// to resolve to its own HTTP/1.x-or-h2c enum because it drove a real
// protocol switch), this library has no transport to hand off to, so it
// keeps every token's name and version verbatim instead of collapsing them
// to a single winner.
type Product struct {
	Name, Version string
}

// ParseUpgrade splits an Upgrade field value into its tokens, trimming OWS
// around each. A malformed (empty) token is simply skipped rather than
// rejected: Upgrade is advisory and the parser never fails a message over it.
func ParseUpgrade(value string) []Product {
	var products []Product

	for len(value) > 0 {
		var token string
		token, value = cutbyte(value, ',')
		token = strings.TrimSpace(token)
		if len(token) == 0 {
			continue
		}

		name, version := token, ""
		if i := strings.IndexByte(token, '/'); i != -1 {
			name, version = token[:i], token[i+1:]
		}

		products = append(products, Product{Name: name, Version: version})
	}

	return products
}

func cutbyte(str string, sep byte) (prefix, postfix string) {
	for i := 0; i < len(str); i++ {
		if str[i] == sep {
			return str[:i], str[i+1:]
		}
	}

	return str, ""
}
