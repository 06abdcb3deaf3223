package utils

import "strings"

// PrimaryImage returns the first entry of a comma-separated image list.
func PrimaryImage(images string) string {
	return strings.Split(images, ",")[0]
}
