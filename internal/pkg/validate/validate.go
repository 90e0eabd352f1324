// Package validate holds the small field checks shared by repos and
// services.
package validate

import "strings"

func Required(value string) bool {
	return strings.TrimSpace(value) != ""
}
