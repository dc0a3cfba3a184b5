package normalization

import (
  "strings"
)

func ParseInputString(input string) string {
  return strings.ToLower(strings.TrimSpace(input))
}

// TrimInputString keeps case; used for display fields like titles and bios.
func TrimInputString(input string) string {
  return strings.TrimSpace(input)
}
