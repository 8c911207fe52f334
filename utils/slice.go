package utils

// UniqueStrings removes duplicate values from a slice of strings, preserving order.
func UniqueStrings(slice []string) []string {
	seen := make(map[string]bool, len(slice))
	list := make([]string, 0, len(slice))
	for _, entry := range slice {
		if !seen[entry] {
			seen[entry] = true
			list = append(list, entry)
		}
	}
	return list
}
